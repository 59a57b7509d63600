package services

import (
	"github.com/rakibul/unibus/internal/pkg/helpers"
)

// offsetLimit converts a 1-based page and size into a SQL offset/limit pair.
func offsetLimit(page, size int) (uint64, int) {
	return helpers.CalculateOffsetLimit(page, size)
}
