package lifecycle

import (
	"fmt"

	"assetflow/models"
)

// TicketEvent describes a ticket change the surrounding application may want
// to reflect on the ticket's asset.
type TicketEvent struct {
	Previous models.TicketStatus
	Current  models.TicketStatus
	Deleted  bool
}

// AssetLinkage decides whether a ticket event should move its asset. The
// asset machine never calls it; the maintenance service does, and applies the
// result through SetStatus.
type AssetLinkage interface {
	Target(event TicketEvent, asset models.Asset) (models.AssetStatus, bool)
}

// ManualLinkage leaves asset status to explicit administrative actions.
type ManualLinkage struct{}

func (ManualLinkage) Target(TicketEvent, models.Asset) (models.AssetStatus, bool) {
	return "", false
}

// AutoLinkage puts the asset under maintenance while a ticket is in progress
// and returns it to Available once that ticket is resolved, closed or deleted.
type AutoLinkage struct{}

func (AutoLinkage) Target(event TicketEvent, asset models.Asset) (models.AssetStatus, bool) {
	if !event.Deleted && event.Current == models.TicketInProgress && event.Previous != models.TicketInProgress {
		if asset.Status == models.AssetAvailable || asset.Status == models.AssetAssigned {
			return models.AssetUnderMaintenance, true
		}
		return "", false
	}
	if event.Previous == models.TicketInProgress && (event.Deleted || event.Current.IsTerminal()) {
		if asset.Status == models.AssetUnderMaintenance {
			return models.AssetAvailable, true
		}
	}
	return "", false
}

const (
	LinkageManual = "manual"
	LinkageAuto   = "auto"
)

func LinkageFor(mode string) (AssetLinkage, error) {
	switch mode {
	case "", LinkageManual:
		return ManualLinkage{}, nil
	case LinkageAuto:
		return AutoLinkage{}, nil
	default:
		return nil, fmt.Errorf("unknown ticket asset linkage %q", mode)
	}
}
