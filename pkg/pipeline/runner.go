package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kalamapona/pkg/assets"
	"github.com/matzehuels/kalamapona/pkg/config"
	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/glyph"
	"github.com/matzehuels/kalamapona/pkg/layout"
	"github.com/matzehuels/kalamapona/pkg/observability"
)

// Runner executes compose runs against one configuration.
//
// The Runner keeps no per-run state apart from the resolver's glyph memo, so
// a single Runner can compose many phrases.
type Runner struct {
	Config   *config.Config
	Resolver *assets.Resolver
	Engine   layout.Engine
	Logger   *log.Logger
}

// NewRunner creates a runner for cfg. A nil cfg uses [config.Default]; a nil
// logger uses log.Default().
func NewRunner(cfg *config.Config, logger *log.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Config: cfg,
		Resolver: assets.NewResolver(assets.Options{
			WordsDir:       cfg.Assets.Words,
			SyllablesDir:   cfg.Assets.Syllables,
			WordPrefix:     cfg.Assets.WordPrefix,
			SyllablePrefix: cfg.Assets.SyllablePrefix,
			Overrides:      cfg.Overrides,
			Logger:         logger,
		}),
		Engine: layout.Engine{
			TargetHeight: cfg.TargetHeight,
			Spacing:      cfg.Spacing,
			Inset:        cfg.CartoucheInset,
		},
		Logger: logger,
	}
}

// Compose runs analyze → resolve → layout for text.
//
// When the phrase contains a name, the cartouche template is loaded before
// any glyph; if it is missing or malformed Compose fails and nothing is
// produced. Glyphs that cannot be resolved are skipped and listed in
// Result.Missing.
func (r *Runner) Compose(ctx context.Context, text string) (res *Result, err error) {
	start := time.Now()
	hooks := observability.Compose()
	hooks.OnComposeStart(ctx, text)
	defer func() {
		placements := 0
		if res != nil {
			placements = res.Stats.Placements
		}
		hooks.OnComposeComplete(ctx, text, placements, time.Since(start), err)
	}()

	if err := r.Engine.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res = &Result{Text: text}

	// Stage 1: Analyze
	parseStart := time.Now()
	compounds, cerr := r.Resolver.Compounds()
	if cerr != nil {
		r.Logger.Warn("no compound glyphs available", "err", errors.UserMessage(cerr))
	}
	res.Analysis = Analyze(text, compounds, r.Config.Alphabet.Phrase())
	res.Stats.ParseTime = time.Since(parseStart)
	res.Stats.Words = len(res.Analysis.Words)
	res.Stats.Syllables = len(res.Analysis.Syllables)
	hooks.OnParseComplete(ctx, res.Stats.Words, res.Stats.Syllables)

	r.Logger.Debug("analyzed phrase",
		"words", res.Analysis.Words,
		"name", res.Analysis.Phrase.Name,
		"syllables", res.Analysis.Syllables,
		"compounds", len(compounds))

	// Stage 2: Resolve
	resolveStart := time.Now()
	var frame *glyph.Cartouche
	if res.Analysis.HasName() {
		frame, err = glyph.LoadCartouche(r.Config.Assets.Cartouche)
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("loaded cartouche template", "path", frame.Source)
	}

	words, err := r.resolve(ctx, res, assets.SourceWord, res.Analysis.Words, r.Resolver.Word)
	if err != nil {
		return nil, err
	}
	syllables, err := r.resolve(ctx, res, assets.SourceSyllable, res.Analysis.Keys, r.Resolver.Syllable)
	if err != nil {
		return nil, err
	}
	res.Stats.ResolveTime = time.Since(resolveStart)
	res.Stats.Missing = len(res.Missing)

	// Stage 3: Layout
	layoutStart := time.Now()
	canvas, err := r.Engine.Layout(words, syllables, frame)
	if err != nil {
		return nil, err
	}
	res.Canvas = canvas
	res.Stats.LayoutTime = time.Since(layoutStart)
	res.Stats.Placements = len(canvas.Placements)
	hooks.OnLayoutComplete(ctx, res.Stats.Placements, canvas.Width, res.Stats.LayoutTime)

	r.Logger.Debug("computed layout",
		"placements", res.Stats.Placements,
		"width", canvas.Width,
		"duration", res.Stats.LayoutTime)

	return res, nil
}

type lookupFunc func(key string) (*glyph.Asset, error)

// resolve loads a glyph for every key. Non-fatal lookup failures are
// recorded on res; the returned items keep only resolved glyphs.
func (r *Runner) resolve(ctx context.Context, res *Result, kind string, keys []string, lookup lookupFunc) ([]layout.Item, error) {
	hooks := observability.Assets()
	items := make([]layout.Item, 0, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := lookup(key)
		if err != nil {
			if errors.IsFatal(err) {
				return nil, err
			}
			r.Logger.Warn("skipping glyph", "kind", kind, "key", key, "err", errors.UserMessage(err))
			res.Missing = append(res.Missing, Missing{Kind: kind, Key: key, Err: err})
			hooks.OnAssetMissing(ctx, kind, key, err)
			continue
		}
		hooks.OnAssetLoaded(ctx, kind, key)
		items = append(items, layout.Item{Key: key, Asset: a})
		res.Sources = append(res.Sources, r.source(kind, key))
	}
	return items, nil
}

func (r *Runner) source(kind, key string) assets.Source {
	if kind == assets.SourceSyllable {
		return r.Resolver.SyllableSource(key)
	}
	return r.Resolver.WordSource(key)
}
