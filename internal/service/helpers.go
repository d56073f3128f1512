package service

import (
	"fmt"
	"strings"
	"time"
)

func resolveNow(now *time.Time) time.Time {
	if now != nil {
		return now.UTC()
	}
	return time.Now().UTC()
}

func formatValidationErrors(prefix string, errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d errors):", prefix, len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
