package handlers

import (
	"campustime.com/campustime/core"
)

// Handler carries the dependencies shared by every endpoint group.
type Handler struct {
	Dm *core.DatabaseManager
}
