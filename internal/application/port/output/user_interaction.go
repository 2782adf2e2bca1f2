package output

import (
	"context"

	"eyedropper/internal/domain/entity"
)

type NotifierPort interface {
	ShowPicked(ctx context.Context, pick entity.Pick)
	ShowFallback(ctx context.Context, value string)
	ShowError(ctx context.Context, message string, err error)
	ShowHistory(ctx context.Context, history entity.History)
}
