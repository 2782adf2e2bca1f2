package output

import "context"

type ClipboardPort interface {
	WriteText(ctx context.Context, text string) error
}
