package showcase

import (
	"fmt"
	"strconv"
	"strings"
)

// Fixed hit-zone ids. Per-item zones are built by alertZone, toastZone and
// sectionZone.
const (
	zoneTheme    = "theme"
	zoneLoading  = "loading"
	zoneNotFound = "not-found"
	zoneHome     = "home"
)

const (
	alertPrefix   = "alert-"
	toastPrefix   = "toast-"
	sectionPrefix = "accordion-"
)

func alertZone(id int) string   { return fmt.Sprintf("%s%d", alertPrefix, id) }
func toastZone(id int) string   { return fmt.Sprintf("%s%d", toastPrefix, id) }
func sectionZone(id int) string { return fmt.Sprintf("%s%d", sectionPrefix, id) }

// zoneTarget splits a per-item zone id into its prefix and numeric id.
func zoneTarget(zoneID string) (prefix string, id int, ok bool) {
	for _, p := range []string{alertPrefix, toastPrefix, sectionPrefix} {
		rest, found := strings.CutPrefix(zoneID, p)
		if !found {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return "", 0, false
		}
		return p, n, true
	}
	return "", 0, false
}
