package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/pchalerm/dnarisk/logger"
	"go.uber.org/zap"
)

var indexPageTemplate *template.Template

// IndexPageData parameterizes the upload form.
type IndexPageData struct {
	DefaultThreshold float64
	MarkerCount      int
}

// init initializes the templates used for rendering the HTML page.
func init() {
	mainTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
	    <link href="/static/style.css" rel="stylesheet"></link>
		<title>Heart Disease DNA Risk Analyzer</title>
	</head>
	<body>
		<header class="app-header">
			<h1 class="app-name">Heart Disease DNA Risk Analyzer</h1>
			<p class="app-description">
				Identify genetic markers linked to heart disease risk in a DNA sequence.
				Upload a FASTA/TXT/FNA file or paste a sequence, set the risk threshold,
				and review the detected markers.
			</p>
		</header>

		<form action="/analyze" method="post" enctype="multipart/form-data" class="analyze-form">
			<fieldset>
				<legend>Sequence input</legend>
				<p>
					<label for="sequence_file">Sequence file (FASTA, TXT, FNA):</label>
					<input type="file" id="sequence_file" name="sequence_file" accept=".fasta,.txt,.fna">
				</p>
				<p>
					<label for="sequence">…or paste the sequence:</label><br>
					<textarea id="sequence" name="sequence" rows="8" cols="80" placeholder="&gt;header&#10;ATCGT..."></textarea>
				</p>
			</fieldset>
			<fieldset>
				<legend>Risk threshold</legend>
				<p>
					<input type="number" name="threshold" min="0" max="1" step="0.1" value="{{ printf "%.1f" .DefaultThreshold }}">
					Markers below this risk score are filtered out of the results.
				</p>
			</fieldset>
			<p><button type="submit">Analyze</button></p>
		</form>

		<p class="table-info">Reference table: {{ .MarkerCount }} marker(s) loaded. <a href="/api/v1/markers">View as JSON</a></p>
	</body>
	</html>`

	indexPageTemplate = template.Must(template.New("index_page").Parse(mainTmpl))
}

// RenderIndexPage writes the upload/threshold form page.
func RenderIndexPage(w io.Writer, data IndexPageData) {
	if err := indexPageTemplate.Execute(w, data); err != nil {
		logger.Error("Fail to render index page", zap.Error(err))
		fmt.Fprintf(w, "<html><body>Error rendering page</body></html>")
	}
}
