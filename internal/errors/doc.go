// Package errors provides the coded error type used across rpg-sheet.
//
// Every error carries a Code, a user-facing message, an optional cause and
// metadata. Codes survive wrapping, so a repository NotFound stays NotFound
// after the orchestrator adds context:
//
//	draft, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: id})
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to get draft").WithMeta("draft_id", id)
//	}
//
// Field validation is collected with a ValidationBuilder and reported as a
// single InvalidArgument:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("playerID", input.PlayerID, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Handlers convert to gRPC status with ToGRPCError.
//
// Layers:
//   - repositories return NotFound / InvalidArgument with the offending IDs in metadata
//   - orchestrators validate input and wrap repository errors with context
//   - handlers convert to gRPC status and log internal errors
//   - the rules engine returns no errors; missing data yields defaults
package errors
