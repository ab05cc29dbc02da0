package importer

import (
	"github.com/bearhustle/goapi/base/ctx"
)

// Report summarizes one sync run. Scanned counts every upstream order seen,
// Sent only those accepted by the order store.
type Report struct {
	Scanned int `json:"scanned"`
	Sent    int `json:"sent"`
}

type UseCase interface {
	// Run pages through the upstream marketplace and forwards normalized
	// listings to the order store until the cursor is exhausted.
	Run(c ctx.Ctx) (*Report, error)
}
