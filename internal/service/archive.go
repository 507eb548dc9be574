package service

import (
	"context"

	"zipabout/internal/domain"
	"zipabout/internal/repository"
)

// ArchiveObserver appends every completed rental to an external audit archive.
// The registry never reads the archive back.
type ArchiveObserver struct {
	archive repository.RentalArchive
}

// NewArchiveObserver creates an ArchiveObserver.
func NewArchiveObserver(archive repository.RentalArchive) *ArchiveObserver {
	return &ArchiveObserver{archive: archive}
}

// OnRentalCompleted implements RentalObserver.
func (o *ArchiveObserver) OnRentalCompleted(ctx context.Context, rental domain.Rental) error {
	return o.archive.Create(ctx, rental)
}
