package characterdraft

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	draftKeyPrefix      = "draft:"
	playerMappingPrefix = "draft:player:"

	// DefaultTTL applies when a draft carries no expiry
	DefaultTTL = 24 * time.Hour

	errDraftNil      = "draft cannot be nil"
	errDraftIDEmpty  = "draft ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
	errDraftExpired  = "draft has already expired"
)

// Config configures the redis draft repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "cannot be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a redis-backed draft repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid draft repository config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

func playerKey(playerID string) string {
	return playerMappingPrefix + playerID
}

func validateDraft(draft *dnd5e.CharacterDraft) error {
	if draft == nil {
		return errors.InvalidArgument(errDraftNil)
	}
	if draft.ID == "" {
		return errors.InvalidArgument(errDraftIDEmpty)
	}
	if draft.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty).WithMeta("draft_id", draft.ID)
	}
	return nil
}

// ttlFor returns how long the draft should live. Drafts without an expiry
// get the repository default.
func (r *redisRepository) ttlFor(draft *dnd5e.CharacterDraft) (time.Duration, error) {
	if draft.ExpiresAt == 0 {
		return r.ttl, nil
	}

	ttl := time.Unix(draft.ExpiresAt, 0).Sub(r.clock.Now())
	if ttl <= 0 {
		return 0, errors.InvalidArgument(errDraftExpired).WithMeta("draft_id", draft.ID)
	}
	return ttl, nil
}

type writeMode int

const (
	writeAny writeMode = iota
	writeCreate
	writeUpdate
)

// maxTxAttempts bounds the retries when a watched key changes under us
const maxTxAttempts = 5

// watch runs fn in a WATCH transaction over keys, retrying when another
// client touched them first.
func (r *redisRepository) watch(ctx context.Context, fn func(*redisclient.Tx) error, keys ...string) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = r.client.Watch(ctx, fn, keys...)
		if err != redisclient.TxFailedErr {
			return err
		}
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, "draft store is busy, try again")
}

// write stores the draft and points the player mapping at it, dropping the
// player's previous draft when it is a different one. A draft ID owned by
// another player is never overwritten. Reports whether the draft key was new.
func (r *redisRepository) write(ctx context.Context, draft *dnd5e.CharacterDraft, mode writeMode) (bool, error) {
	ttl, err := r.ttlFor(draft)
	if err != nil {
		return false, err
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return false, errors.Wrap(err, "failed to marshal draft")
	}

	var (
		created    bool
		replacedID string
	)

	txf := func(tx *redisclient.Tx) error {
		stored, err := tx.Get(ctx, draftKey(draft.ID)).Result()
		if err != nil && err != redisclient.Nil {
			return errors.Wrap(err, "failed to load draft")
		}
		found := err == nil

		switch {
		case found && mode == writeCreate:
			return errors.AlreadyExistsf("draft with ID %s already exists", draft.ID).
				WithMeta("draft_id", draft.ID)
		case !found && mode == writeUpdate:
			return errors.NotFoundf("draft with ID %s not found", draft.ID).
				WithMeta("draft_id", draft.ID)
		}

		if found {
			var current dnd5e.CharacterDraft
			if err := json.Unmarshal([]byte(stored), &current); err != nil {
				return errors.Wrap(err, "failed to unmarshal draft").WithMeta("draft_id", draft.ID)
			}
			if current.PlayerID != draft.PlayerID {
				return errors.PermissionDeniedf("draft %s belongs to another player", draft.ID).
					WithMeta("draft_id", draft.ID).
					WithMeta("player_id", draft.PlayerID)
			}
		}

		existingID, err := tx.Get(ctx, playerKey(draft.PlayerID)).Result()
		if err != nil && err != redisclient.Nil {
			return errors.Wrap(err, "failed to check existing draft")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redisclient.Pipeliner) error {
			if existingID != "" && existingID != draft.ID {
				pipe.Del(ctx, draftKey(existingID))
			}
			pipe.Set(ctx, draftKey(draft.ID), data, ttl)
			pipe.Set(ctx, playerKey(draft.PlayerID), draft.ID, ttl)
			return nil
		})
		if err != nil {
			return err
		}

		created = !found
		replacedID = ""
		if existingID != draft.ID {
			replacedID = existingID
		}
		return nil
	}

	if err := r.watch(ctx, txf, draftKey(draft.ID), playerKey(draft.PlayerID)); err != nil {
		return false, errors.Wrap(err, "failed to write draft")
	}

	if replacedID != "" {
		slog.DebugContext(ctx, "replaced player draft",
			"player_id", draft.PlayerID,
			"old_draft_id", replacedID,
			"draft_id", draft.ID)
	}

	return created, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	if _, err := r.write(ctx, input.Draft, writeCreate); err != nil {
		return nil, err
	}

	return &CreateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	result, err := r.client.Get(ctx, draftKey(input.ID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", input.ID).
				WithMeta("draft_id", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get draft")
	}

	var draft dnd5e.CharacterDraft
	if err := json.Unmarshal([]byte(result), &draft); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal draft").WithMeta("draft_id", input.ID)
	}

	return &GetOutput{Draft: &draft}, nil
}

func (r *redisRepository) GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKey(input.PlayerID)
	draftID, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no draft found for player %s", input.PlayerID).
				WithMeta("player_id", input.PlayerID)
		}
		return nil, errors.Wrap(err, "failed to get player draft mapping")
	}

	getOutput, err := r.Get(ctx, GetInput{ID: draftID})
	if err != nil {
		if errors.IsNotFound(err) {
			// stale mapping
			if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
				slog.WarnContext(ctx, "failed to clear stale player mapping",
					"player_id", input.PlayerID,
					"error", delErr)
			}
		}
		return nil, err
	}

	return &GetByPlayerIDOutput{Draft: getOutput.Draft}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	if _, err := r.write(ctx, input.Draft, writeUpdate); err != nil {
		return nil, err
	}

	return &UpdateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	created, err := r.write(ctx, input.Draft, writeAny)
	if err != nil {
		return nil, err
	}

	return &UpsertOutput{Draft: input.Draft, Created: created}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	txf := func(tx *redisclient.Tx) error {
		stored, err := tx.Get(ctx, draftKey(input.ID)).Result()
		if err != nil {
			if err == redisclient.Nil {
				return errors.NotFoundf("draft with ID %s not found", input.ID).
					WithMeta("draft_id", input.ID)
			}
			return errors.Wrap(err, "failed to get draft")
		}

		var draft dnd5e.CharacterDraft
		if err := json.Unmarshal([]byte(stored), &draft); err != nil {
			return errors.Wrap(err, "failed to unmarshal draft").WithMeta("draft_id", input.ID)
		}

		// only drop the mapping if it still points at this draft
		var dropMapping bool
		if draft.PlayerID != "" {
			if err := tx.Watch(ctx, playerKey(draft.PlayerID)).Err(); err != nil {
				return errors.Wrap(err, "failed to watch player draft mapping")
			}
			current, err := tx.Get(ctx, playerKey(draft.PlayerID)).Result()
			if err != nil && err != redisclient.Nil {
				return errors.Wrap(err, "failed to get player draft mapping")
			}
			dropMapping = current == input.ID
		}

		_, err = tx.TxPipelined(ctx, func(pipe redisclient.Pipeliner) error {
			pipe.Del(ctx, draftKey(input.ID))
			if dropMapping {
				pipe.Del(ctx, playerKey(draft.PlayerID))
			}
			return nil
		})
		return err
	}

	if err := r.watch(ctx, txf, draftKey(input.ID)); err != nil {
		return nil, errors.Wrap(err, "failed to delete draft").WithMeta("draft_id", input.ID)
	}

	return &DeleteOutput{}, nil
}
