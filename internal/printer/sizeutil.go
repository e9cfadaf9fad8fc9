package printer

import "fmt"

// FormatMiB returns a human-readable memory size from a MiB amount.
// Examples: "0 MiB", "512 MiB", "1.5 GiB", "2.0 TiB".
func FormatMiB(mib int) string {
	if mib < 0 {
		return "0 MiB"
	}

	const (
		gib = 1024
		tib = 1024 * gib
	)

	switch {
	case mib >= tib:
		return fmt.Sprintf("%.1f TiB", float64(mib)/float64(tib))
	case mib >= gib:
		return fmt.Sprintf("%.1f GiB", float64(mib)/float64(gib))
	default:
		return fmt.Sprintf("%d MiB", mib)
	}
}
