package reporter

import (
	"fmt"
	"time"
)

// FileName returns "phishscan-<kind>-<unix millis>.<format>".
func FileName(kind string, format Format, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d.%s", FilePrefix, kind, now.UnixMilli(), format)
}
