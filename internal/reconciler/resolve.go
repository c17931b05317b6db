package reconciler

import (
	"context"
	"fmt"

	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/logging"
)

// resolve fills Selected on the records the operator wants applied and
// returns only those. Interactive mode walks records one at a time; auto
// mode selects every forward action behind a single batch confirmation.
func (r *reconciler) resolve(ctx context.Context, environment envs.Environment, records []differ.Record) ([]differ.Record, error) {
	if r.auto {
		return r.resolveAuto(ctx, environment, records)
	}
	return r.resolveInteractive(ctx, records)
}

// resolveInteractive runs the selection state machine for each record in
// turn. Records resolved to do_nothing are dropped from the output.
func (r *reconciler) resolveInteractive(ctx context.Context, records []differ.Record) ([]differ.Record, error) {
	selected := make([]differ.Record, 0, len(records))

	for i := range records {
		record := &records[i]

		action, err := r.resolveRecord(ctx, record)
		if err != nil {
			return nil, err
		}

		record.Selected = action
		if action != differ.ActionDoNothing {
			selected = append(selected, *record)
		}
	}

	return selected, nil
}

// resolveRecord loops one record through selection and confirmation until
// the operator affirms a choice. Declining the confirmation returns to
// selection; only an affirmative confirmation finalizes the record, whether
// the choice is a real action or do_nothing.
func (r *reconciler) resolveRecord(ctx context.Context, record *differ.Record) (differ.Action, error) {
	actions := make([]differ.Action, 0, len(record.Candidates)+1)
	actions = append(actions, record.Candidates...)
	actions = append(actions, differ.ActionDoNothing)

	options := make([]string, len(actions))
	for i, action := range actions {
		options[i] = record.Describe(action)
	}

	title := fmt.Sprintf("%s differs between %s and remote %s:",
		record.Key, record.Environment.LocalFile(), record.Environment)

	for {
		choice, err := r.prompter.Select(ctx, title, options)
		if err != nil {
			return "", err
		}
		action := actions[choice]

		confirmed, err := r.prompter.Confirm(ctx, "Confirm: "+record.Describe(action))
		if err != nil {
			return "", err
		}
		if confirmed {
			return action, nil
		}
	}
}

// resolveAuto selects the forward action for every record and gates the
// whole batch behind one confirmation. Records offering only removals are
// skipped; auto mode never deletes anything. Declining applies nothing for
// the environment.
func (r *reconciler) resolveAuto(ctx context.Context, environment envs.Environment, records []differ.Record) ([]differ.Record, error) {
	log := logging.Ctx(ctx)

	selected := make([]differ.Record, 0, len(records))
	for i := range records {
		record := &records[i]

		action, ok := record.ForwardAction()
		if !ok {
			log.Debug().
				Str("key", record.Key).
				Msg("No forward action, skipped in auto mode")
			continue
		}

		record.Selected = action
		selected = append(selected, *record)
	}

	if len(selected) == 0 {
		r.printf("%s: nothing to apply automatically\n", environment)
		return nil, nil
	}

	r.printf("Pending changes for %s:\n", environment)
	for i := range selected {
		r.printf("  %s\n", selected[i].Describe(selected[i].Selected))
	}

	confirmed, err := r.prompter.Confirm(ctx, fmt.Sprintf("Apply %d changes to %s", len(selected), environment))
	if err != nil {
		return nil, err
	}
	if !confirmed {
		log.Info().Msg("Batch declined, nothing applied")
		r.printf("%s: batch declined, nothing applied\n", environment)
		return nil, nil
	}

	return selected, nil
}
