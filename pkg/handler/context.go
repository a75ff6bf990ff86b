package handler

// DI for all handlers and models alike.

import (
	"github.com/pchalerm/dnarisk/pkg/db"
	"github.com/pchalerm/dnarisk/pkg/model"
)

type AppContext struct {
	Markers          []model.MarkerRecord // reference table, loaded once at startup, read-only
	Store            *db.MarkerStore
	DefaultThreshold float64
}
