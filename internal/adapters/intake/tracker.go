package intake

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/adapters/userstore"
	"github.com/jobsift/jobsift/internal/core"
)

// ensureTracker returns the tracker sheet id for a user, creating the
// spreadsheet and the registry row on first contact.
func ensureTracker(
	ctx context.Context,
	store core.UserStore,
	sink core.RecordSink,
	email, title string,
	logger *zap.Logger,
) (string, error) {
	user, err := store.Get(ctx, email)
	if err != nil && !errors.Is(err, userstore.ErrNotFound) {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user != nil && user.SheetID != "" {
		return user.SheetID, nil
	}

	sheetID, url, err := sink.CreateTracker(ctx, title)
	if err != nil {
		return "", fmt.Errorf("failed to create tracker: %w", err)
	}
	if err := sink.EnsureHeaders(ctx, sheetID); err != nil {
		return "", fmt.Errorf("failed to write tracker headers: %w", err)
	}

	if user == nil {
		err = store.Save(ctx, &core.UserRecord{Email: email, SheetID: sheetID})
	} else {
		err = store.UpdateSheetID(ctx, email, sheetID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("Created tracker for user",
		zap.String("user", email),
		zap.String("sheet_id", sheetID),
		zap.String("url", url))

	return sheetID, nil
}
