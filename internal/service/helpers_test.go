package service

import (
	"fmt"
	"time"
)

// sequentialIDs yields "id-1", "id-2", ...
type sequentialIDs struct {
	n int
}

func (g *sequentialIDs) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}
