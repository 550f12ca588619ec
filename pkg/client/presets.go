package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/kjanat/restpki/client/pkg/api"
)

const (
	opGetFootnotePreset = "get footnote preset"
	opGetNewPagePreset  = "get new page preset"
)

// FootnoteOptions selects a footnote preset variant. Zero fields are not
// sent, letting the service apply its defaults.
type FootnoteOptions struct {
	// PageNumber is the page that receives the stamp; negative values count
	// from the end of the document.
	PageNumber int
	// Rows is the number of signature rows the footnote reserves.
	Rows int
}

// PresetCache is a read-through cache of visual positioning presets. Presets
// are static reference data, so entries never expire. Two goroutines that
// miss the same key at once may both fetch it; the stored values are
// identical.
type PresetCache struct {
	client *Client

	mu      sync.RWMutex
	presets map[string]*Preset
}

func newPresetCache(c *Client) *PresetCache {
	return &PresetCache{
		client:  c,
		presets: make(map[string]*Preset),
	}
}

// Footnote returns the preset that places signatures in a footnote.
func (p *PresetCache) Footnote(ctx context.Context, opts FootnoteOptions) (*Preset, error) {
	params := &api.GetFootnotePresetParams{}
	query := url.Values{}
	if opts.PageNumber != 0 {
		page := opts.PageNumber
		params.PageNumber = &page
		query.Set("pageNumber", strconv.Itoa(page))
	}
	if opts.Rows != 0 {
		rows := opts.Rows
		params.Rows = &rows
		query.Set("rows", strconv.Itoa(rows))
	}

	return p.get(presetKey("Footnote", query), opGetFootnotePreset, func() (*api.PresetModel, error) {
		resp, err := send(ctx, p.client, opGetFootnotePreset, func() (*http.Response, error) {
			return p.client.raw.GetFootnotePreset(ctx, params)
		}, api.ParseGetFootnotePresetResponse)
		if err != nil {
			return nil, err
		}
		return resp.JSON200, nil
	})
}

// NewPage returns the preset that places signatures on an appended page.
func (p *PresetCache) NewPage(ctx context.Context) (*Preset, error) {
	return p.get(presetKey("NewPage", nil), opGetNewPagePreset, func() (*api.PresetModel, error) {
		resp, err := send(ctx, p.client, opGetNewPagePreset, func() (*http.Response, error) {
			return p.client.raw.GetNewPagePreset(ctx)
		}, api.ParseGetNewPagePresetResponse)
		if err != nil {
			return nil, err
		}
		return resp.JSON200, nil
	})
}

// Len returns the number of cached presets.
func (p *PresetCache) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.presets)
}

// Reset drops every cached preset.
func (p *PresetCache) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.presets)
}

func (p *PresetCache) get(key, op string, fetch func() (*api.PresetModel, error)) (*Preset, error) {
	p.mu.RLock()
	preset, ok := p.presets[key]
	p.mu.RUnlock()
	if ok {
		return preset, nil
	}

	raw, err := fetch()
	if err != nil {
		return nil, err
	}
	if raw == nil || isAbsent(*raw) {
		return nil, missingField(op, "preset")
	}

	preset = &Preset{raw: cloneRaw(*raw)}
	p.mu.Lock()
	p.presets[key] = preset
	p.mu.Unlock()
	return preset, nil
}

// presetKey names a preset request: the preset name plus its canonical
// query string.
func presetKey(name string, query url.Values) string {
	if len(query) == 0 {
		return name
	}
	return name + "?" + query.Encode()
}
