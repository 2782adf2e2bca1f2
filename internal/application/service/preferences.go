package service

import (
	"context"
	"encoding/json"
	"fmt"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
)

const (
	KeyColorFormat  = "colorFormat"
	KeyColorHistory = "colorHistory"
	KeyLastColor    = "lastColor"
)

// Preferences maps picker settings and history onto the storage port.
type Preferences struct {
	store  output.StoragePort
	logger output.LoggerPort
}

func NewPreferences(store output.StoragePort, logger output.LoggerPort) *Preferences {
	return &Preferences{store: store, logger: logger}
}

func (p *Preferences) Format(ctx context.Context) (entity.Format, error) {
	val, ok, err := p.store.Get(ctx, KeyColorFormat)
	if err != nil {
		return entity.FormatHex, fmt.Errorf("load %s: %w", KeyColorFormat, err)
	}
	if !ok {
		return entity.FormatHex, nil
	}
	return entity.ParseFormat(val), nil
}

func (p *Preferences) SetFormat(ctx context.Context, f entity.Format) error {
	if err := p.store.Set(ctx, KeyColorFormat, entity.ParseFormat(string(f)).String()); err != nil {
		return fmt.Errorf("save %s: %w", KeyColorFormat, err)
	}
	return nil
}

func (p *Preferences) History(ctx context.Context) (entity.History, error) {
	val, ok, err := p.store.Get(ctx, KeyColorHistory)
	if err != nil {
		return entity.History{}, fmt.Errorf("load %s: %w", KeyColorHistory, err)
	}
	if !ok || val == "" {
		return entity.History{}, nil
	}

	var stored []string
	if err := json.Unmarshal([]byte(val), &stored); err != nil {
		p.logger.Warn("Discarding unreadable color history", "error", err)
		return entity.History{}, nil
	}
	return entity.HistoryFromHex(stored), nil
}

func (p *Preferences) LastColor(ctx context.Context) (entity.Color, bool, error) {
	val, ok, err := p.store.Get(ctx, KeyLastColor)
	if err != nil {
		return entity.Color{}, false, fmt.Errorf("load %s: %w", KeyLastColor, err)
	}
	if !ok {
		return entity.Color{}, false, nil
	}
	c, err := entity.ParseHex(val)
	if err != nil {
		return entity.Color{}, false, nil
	}
	return c, true, nil
}

// RecordPick pushes c onto the history and stores it as the last colour.
func (p *Preferences) RecordPick(ctx context.Context, c entity.Color) (entity.History, error) {
	history, err := p.History(ctx)
	if err != nil {
		return entity.History{}, err
	}
	history = history.Push(c)

	data, err := json.Marshal(history.Hex())
	if err != nil {
		return entity.History{}, fmt.Errorf("encode history: %w", err)
	}
	if err := p.store.Set(ctx, KeyColorHistory, string(data)); err != nil {
		return entity.History{}, fmt.Errorf("save %s: %w", KeyColorHistory, err)
	}
	if err := p.store.Set(ctx, KeyLastColor, c.ToHex()); err != nil {
		return entity.History{}, fmt.Errorf("save %s: %w", KeyLastColor, err)
	}

	p.logger.Debug("Color recorded", "color", c.ToHex(), "historyLen", history.Len())
	return history, nil
}
