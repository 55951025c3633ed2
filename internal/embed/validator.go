package embed

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"campus_feed/internal/domain"
)

// Stage identifies how far a validation attempt progressed. Each stage is
// a terminal rejection point; the stage on a rejected Result names the
// gate that failed.
type Stage string

const (
	StageParsed             Stage = "parsed"
	StageOriginalityChecked Stage = "originality_checked"
	StageUniquenessChecked  Stage = "uniqueness_checked"
	StageTargetValidated    Stage = "target_validated"
	StageAbuseChecked       Stage = "abuse_checked"
)

// Result reports the outcome of a validation run. Ref is nil when the
// text holds no reference at all.
type Result struct {
	Stage  Stage
	Ref    *domain.EmbedRef
	Target *domain.EmbedTarget
}

// Store is the slice of embed persistence the validator reads.
type Store interface {
	GetBySource(ctx context.Context, sourceType, sourceID string) (*domain.ContentEmbed, error)
	CountRecentByUserAndTarget(ctx context.Context, userID, embeddedID string, since time.Time) (int, error)
}

// TargetResolver looks up the campus, status and author of a referenced
// item. A missing item resolves to (nil, nil).
type TargetResolver interface {
	ResolveTarget(ctx context.Context, typ domain.EmbedTargetType, id string) (*domain.EmbedTarget, error)
}

type Validator struct {
	embeds  Store
	targets TargetResolver

	minOriginalText int
	selfEmbedWindow time.Duration
	selfEmbedMax    int
	now             func() time.Time
}

type ValidatorConfig struct {
	MinOriginalText int
	SelfEmbedWindow time.Duration
	SelfEmbedMax    int
}

func NewValidator(embeds Store, targets TargetResolver, cfg ValidatorConfig) *Validator {
	if cfg.MinOriginalText == 0 {
		cfg.MinOriginalText = 40
	}
	if cfg.SelfEmbedWindow == 0 {
		cfg.SelfEmbedWindow = 24 * time.Hour
	}
	if cfg.SelfEmbedMax == 0 {
		cfg.SelfEmbedMax = 3
	}
	return &Validator{
		embeds:          embeds,
		targets:         targets,
		minOriginalText: cfg.MinOriginalText,
		selfEmbedWindow: cfg.SelfEmbedWindow,
		selfEmbedMax:    cfg.SelfEmbedMax,
		now:             time.Now,
	}
}

// Validate runs the gate sequence over text for the given source. The
// first failing gate wins; a rejection carries the stage it failed at and
// a domain.Error with the matching kind. A passing run with a non-nil Ref
// means the caller may commit the embed.
func (v *Validator) Validate(ctx context.Context, sourceType, sourceID, authorUserID, campusID, text string) (*Result, error) {
	ref := ParseReference(text)
	if ref == nil {
		return &Result{Stage: StageParsed}, nil
	}

	original := utf8.RuneCountInString(StripReferences(text))
	if original < v.minOriginalText {
		return &Result{Stage: StageOriginalityChecked, Ref: ref}, domain.NewErrorWithDetails(
			domain.KindInsufficientOriginalText,
			fmt.Sprintf("You must include at least %d characters of original text besides the reference.", v.minOriginalText),
			map[string]any{"minimum": v.minOriginalText, "current": original},
		)
	}

	existing, err := v.embeds.GetBySource(ctx, sourceType, sourceID)
	if err != nil {
		return nil, fmt.Errorf("lookup embed by source: %w", err)
	}
	if existing != nil {
		return &Result{Stage: StageUniquenessChecked, Ref: ref}, domain.NewError(
			domain.KindEmbedAlreadyExists,
			"You can reference only one item per post.",
		)
	}

	target, err := v.targets.ResolveTarget(ctx, ref.Type, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve embed target: %w", err)
	}
	if target == nil {
		return &Result{Stage: StageTargetValidated, Ref: ref}, domain.NewError(
			domain.KindEmbedTargetNotFound,
			"The referenced content does not exist.",
		)
	}
	if target.CampusID != campusID {
		return &Result{Stage: StageTargetValidated, Ref: ref}, domain.NewError(
			domain.KindEmbedTargetCrossCampus,
			"This content is not available in your campus.",
		)
	}
	if !target.Status.Visible() {
		return &Result{Stage: StageTargetValidated, Ref: ref}, domain.NewError(
			domain.KindEmbedTargetInactive,
			"The referenced content is no longer available.",
		)
	}

	if target.AuthorUserID == authorUserID {
		since := v.now().Add(-v.selfEmbedWindow)
		recent, err := v.embeds.CountRecentByUserAndTarget(ctx, authorUserID, ref.ID, since)
		if err != nil {
			return nil, fmt.Errorf("count recent self-embeds: %w", err)
		}
		// The attempt under validation counts toward the limit.
		if recent+1 >= v.selfEmbedMax {
			return &Result{Stage: StageAbuseChecked, Ref: ref}, domain.NewError(
				domain.KindEmbedAbuse,
				"This reference has been used too often.",
			)
		}
	}

	return &Result{Stage: StageAbuseChecked, Ref: ref, Target: target}, nil
}
