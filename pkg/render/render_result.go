package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/pchalerm/dnarisk/logger"
	"github.com/pchalerm/dnarisk/pkg/model"
	"go.uber.org/zap"
)

var resultPageTemplate *template.Template

// ResultPageData carries one finished analysis to the results page.
type ResultPageData struct {
	Sequence   string
	Threshold  float64
	Detections []model.Detection
	Summary    model.RiskSummary
	TopRisks   []model.Detection
}

// riskColor maps a risk score in [0,1] onto a green-to-red scale,
// bucketed so neighboring scores stay visually distinct.
func riskColor(risk float64) string {
	switch {
	case risk < 0.2:
		return "#6B8E23" // olive green
	case risk < 0.4:
		return "#FFFFB2" // light yellow
	case risk < 0.6:
		return "#FECC5C" // yellow-orange
	case risk < 0.8:
		return "#FD8D3C" // orange
	default:
		return "#BD0026" // red
	}
}

// init initializes the templates used for rendering the HTML page.
func init() {
	mainTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
	    <link href="/static/style.css" rel="stylesheet"></link>
		<title>DNA Risk Analysis Results</title>
	</head>
	<body>
		<header class="app-header">
			<h1 class="app-name">Heart Disease DNA Risk Analyzer</h1>
		</header>

		<section class="sequence-box">
			<h2>Validated DNA Sequence</h2>
			<pre class="sequence">{{ .Sequence }}</pre>
			<p>Risk threshold: <strong>{{ printf "%.2f" .Threshold }}</strong></p>
		</section>

		<section class="summary-box">
			<h2>Summary</h2>
			<p><strong>{{ .Summary.DetectedCount }}</strong> marker(s) detected at or above the threshold.</p>
			<p>Total risk score over all matched markers: <strong>{{ printf "%.2f" .Summary.TotalRiskScore }}</strong></p>
		</section>

		{{ if .Detections }}
		<section class="detections-box">
			<h2>Detected Markers</h2>
			<table border="1" cellpadding="6">
				<tr><th>Marker</th><th>Associated Risk</th><th>Description</th></tr>
				{{ range .Detections }}
				<tr>
					<td><code>{{ .Marker }}</code></td>
					<td style="background-color: {{ riskColor .Risk }};">{{ printf "%.2f" .Risk }}</td>
					<td>{{ .Description }}</td>
				</tr>
				{{ end }}
			</table>
		</section>

		<section class="top-risks-box">
			<h2>Top Risk Factors</h2>
			<ol>
				{{ range .TopRisks }}
				<li><strong>{{ .Description }}</strong>: detected with a risk score of {{ printf "%.2f" .Risk }}</li>
				{{ end }}
			</ol>
		</section>
		{{ else }}
		<p class="no-results">No markers detected above the threshold. Try lowering the threshold for more results.</p>
		{{ end }}

		<p><a href="/">Analyze another sequence</a></p>
	</body>
	</html>`

	resultPageTemplate = template.New("result_page").Funcs(template.FuncMap{
		"riskColor": riskColor,
	})

	template.Must(resultPageTemplate.Parse(mainTmpl))
}

// RenderResultPage writes the analysis results page.
func RenderResultPage(w io.Writer, data ResultPageData) {
	if err := resultPageTemplate.Execute(w, data); err != nil {
		logger.Error("Fail to render result page", zap.Error(err))
		fmt.Fprintf(w, "<html><body>Error rendering results</body></html>")
	}
}
