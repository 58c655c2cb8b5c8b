// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeframe-hq/codeframe/ent/agent"
	"github.com/codeframe-hq/codeframe/ent/auditlog"
	"github.com/codeframe-hq/codeframe/ent/blocker"
	"github.com/codeframe-hq/codeframe/ent/contextcheckpoint"
	"github.com/codeframe-hq/codeframe/ent/contextitem"
	"github.com/codeframe-hq/codeframe/ent/correctionattempt"
	"github.com/codeframe-hq/codeframe/ent/evidence"
	"github.com/codeframe-hq/codeframe/ent/issue"
	"github.com/codeframe-hq/codeframe/ent/project"
	"github.com/codeframe-hq/codeframe/ent/projectagent"
	"github.com/codeframe-hq/codeframe/ent/schema"
	"github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/ent/testresult"
	"github.com/codeframe-hq/codeframe/ent/tokenusage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescMaturityScore is the schema descriptor for maturity_score field.
	agentDescMaturityScore := agentFields[5].Descriptor()
	// agent.DefaultMaturityScore holds the default value on creation for the maturity_score field.
	agent.DefaultMaturityScore = agentDescMaturityScore.Default.(float64)
	// agentDescCompletedCount is the schema descriptor for completed_count field.
	agentDescCompletedCount := agentFields[6].Descriptor()
	// agent.DefaultCompletedCount holds the default value on creation for the completed_count field.
	agent.DefaultCompletedCount = agentDescCompletedCount.Default.(int)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[8].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescEventType is the schema descriptor for event_type field.
	auditlogDescEventType := auditlogFields[1].Descriptor()
	// auditlog.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	auditlog.EventTypeValidator = auditlogDescEventType.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[7].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	blockerFields := schema.Blocker{}.Fields()
	_ = blockerFields
	// blockerDescQuestion is the schema descriptor for question field.
	blockerDescQuestion := blockerFields[5].Descriptor()
	// blocker.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	blocker.QuestionValidator = func() func(string) error {
		validators := blockerDescQuestion.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(question string) error {
			for _, fn := range fns {
				if err := fn(question); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// blockerDescAnswer is the schema descriptor for answer field.
	blockerDescAnswer := blockerFields[6].Descriptor()
	// blocker.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	blocker.AnswerValidator = blockerDescAnswer.Validators[0].(func(string) error)
	// blockerDescCreatedAt is the schema descriptor for created_at field.
	blockerDescCreatedAt := blockerFields[8].Descriptor()
	// blocker.DefaultCreatedAt holds the default value on creation for the created_at field.
	blocker.DefaultCreatedAt = blockerDescCreatedAt.Default.(func() time.Time)
	contextcheckpointFields := schema.ContextCheckpoint{}.Fields()
	_ = contextcheckpointFields
	// contextcheckpointDescCreatedAt is the schema descriptor for created_at field.
	contextcheckpointDescCreatedAt := contextcheckpointFields[8].Descriptor()
	// contextcheckpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	contextcheckpoint.DefaultCreatedAt = contextcheckpointDescCreatedAt.Default.(func() time.Time)
	contextitemFields := schema.ContextItem{}.Fields()
	_ = contextitemFields
	// contextitemDescImportanceScore is the schema descriptor for importance_score field.
	contextitemDescImportanceScore := contextitemFields[5].Descriptor()
	// contextitem.DefaultImportanceScore holds the default value on creation for the importance_score field.
	contextitem.DefaultImportanceScore = contextitemDescImportanceScore.Default.(float64)
	// contextitemDescAccessCount is the schema descriptor for access_count field.
	contextitemDescAccessCount := contextitemFields[7].Descriptor()
	// contextitem.DefaultAccessCount holds the default value on creation for the access_count field.
	contextitem.DefaultAccessCount = contextitemDescAccessCount.Default.(int)
	// contextitem.AccessCountValidator is a validator for the "access_count" field. It is called by the builders before save.
	contextitem.AccessCountValidator = contextitemDescAccessCount.Validators[0].(func(int) error)
	// contextitemDescCreatedAt is the schema descriptor for created_at field.
	contextitemDescCreatedAt := contextitemFields[8].Descriptor()
	// contextitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	contextitem.DefaultCreatedAt = contextitemDescCreatedAt.Default.(func() time.Time)
	// contextitemDescLastAccessed is the schema descriptor for last_accessed field.
	contextitemDescLastAccessed := contextitemFields[9].Descriptor()
	// contextitem.DefaultLastAccessed holds the default value on creation for the last_accessed field.
	contextitem.DefaultLastAccessed = contextitemDescLastAccessed.Default.(func() time.Time)
	correctionattemptFields := schema.CorrectionAttempt{}.Fields()
	_ = correctionattemptFields
	// correctionattemptDescAttemptNumber is the schema descriptor for attempt_number field.
	correctionattemptDescAttemptNumber := correctionattemptFields[2].Descriptor()
	// correctionattempt.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	correctionattempt.AttemptNumberValidator = func() func(int) error {
		validators := correctionattemptDescAttemptNumber.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(attempt_number int) error {
			for _, fn := range fns {
				if err := fn(attempt_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// correctionattemptDescCreatedAt is the schema descriptor for created_at field.
	correctionattemptDescCreatedAt := correctionattemptFields[7].Descriptor()
	// correctionattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	correctionattempt.DefaultCreatedAt = correctionattemptDescCreatedAt.Default.(func() time.Time)
	evidenceFields := schema.Evidence{}.Fields()
	_ = evidenceFields
	// evidenceDescVerified is the schema descriptor for verified field.
	evidenceDescVerified := evidenceFields[4].Descriptor()
	// evidence.DefaultVerified holds the default value on creation for the verified field.
	evidence.DefaultVerified = evidenceDescVerified.Default.(bool)
	// evidenceDescCreatedAt is the schema descriptor for created_at field.
	evidenceDescCreatedAt := evidenceFields[12].Descriptor()
	// evidence.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidence.DefaultCreatedAt = evidenceDescCreatedAt.Default.(func() time.Time)
	issueFields := schema.Issue{}.Fields()
	_ = issueFields
	// issueDescTitle is the schema descriptor for title field.
	issueDescTitle := issueFields[2].Descriptor()
	// issue.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	issue.TitleValidator = issueDescTitle.Validators[0].(func(string) error)
	// issueDescPriority is the schema descriptor for priority field.
	issueDescPriority := issueFields[4].Descriptor()
	// issue.DefaultPriority holds the default value on creation for the priority field.
	issue.DefaultPriority = issueDescPriority.Default.(int)
	// issue.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	issue.PriorityValidator = func() func(int) error {
		validators := issueDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// issueDescWorkflowStep is the schema descriptor for workflow_step field.
	issueDescWorkflowStep := issueFields[5].Descriptor()
	// issue.DefaultWorkflowStep holds the default value on creation for the workflow_step field.
	issue.DefaultWorkflowStep = issueDescWorkflowStep.Default.(int)
	// issue.WorkflowStepValidator is a validator for the "workflow_step" field. It is called by the builders before save.
	issue.WorkflowStepValidator = func() func(int) error {
		validators := issueDescWorkflowStep.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(workflow_step int) error {
			for _, fn := range fns {
				if err := fn(workflow_step); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// issueDescCreatedAt is the schema descriptor for created_at field.
	issueDescCreatedAt := issueFields[6].Descriptor()
	// issue.DefaultCreatedAt holds the default value on creation for the created_at field.
	issue.DefaultCreatedAt = issueDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[5].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[6].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectagentFields := schema.ProjectAgent{}.Fields()
	_ = projectagentFields
	// projectagentDescIsActive is the schema descriptor for is_active field.
	projectagentDescIsActive := projectagentFields[3].Descriptor()
	// projectagent.DefaultIsActive holds the default value on creation for the is_active field.
	projectagent.DefaultIsActive = projectagentDescIsActive.Default.(bool)
	// projectagentDescCreatedAt is the schema descriptor for created_at field.
	projectagentDescCreatedAt := projectagentFields[4].Descriptor()
	// projectagent.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectagent.DefaultCreatedAt = projectagentDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[4].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[8].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// task.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	task.PriorityValidator = func() func(int) error {
		validators := taskDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescRequiresHumanApproval is the schema descriptor for requires_human_approval field.
	taskDescRequiresHumanApproval := taskFields[11].Descriptor()
	// task.DefaultRequiresHumanApproval holds the default value on creation for the requires_human_approval field.
	task.DefaultRequiresHumanApproval = taskDescRequiresHumanApproval.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[13].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	testresultFields := schema.TestResult{}.Fields()
	_ = testresultFields
	// testresultDescPassed is the schema descriptor for passed field.
	testresultDescPassed := testresultFields[3].Descriptor()
	// testresult.DefaultPassed holds the default value on creation for the passed field.
	testresult.DefaultPassed = testresultDescPassed.Default.(int)
	// testresult.PassedValidator is a validator for the "passed" field. It is called by the builders before save.
	testresult.PassedValidator = testresultDescPassed.Validators[0].(func(int) error)
	// testresultDescFailed is the schema descriptor for failed field.
	testresultDescFailed := testresultFields[4].Descriptor()
	// testresult.DefaultFailed holds the default value on creation for the failed field.
	testresult.DefaultFailed = testresultDescFailed.Default.(int)
	// testresult.FailedValidator is a validator for the "failed" field. It is called by the builders before save.
	testresult.FailedValidator = testresultDescFailed.Validators[0].(func(int) error)
	// testresultDescErrors is the schema descriptor for errors field.
	testresultDescErrors := testresultFields[5].Descriptor()
	// testresult.DefaultErrors holds the default value on creation for the errors field.
	testresult.DefaultErrors = testresultDescErrors.Default.(int)
	// testresult.ErrorsValidator is a validator for the "errors" field. It is called by the builders before save.
	testresult.ErrorsValidator = testresultDescErrors.Validators[0].(func(int) error)
	// testresultDescSkipped is the schema descriptor for skipped field.
	testresultDescSkipped := testresultFields[6].Descriptor()
	// testresult.DefaultSkipped holds the default value on creation for the skipped field.
	testresult.DefaultSkipped = testresultDescSkipped.Default.(int)
	// testresult.SkippedValidator is a validator for the "skipped" field. It is called by the builders before save.
	testresult.SkippedValidator = testresultDescSkipped.Validators[0].(func(int) error)
	// testresultDescDurationSeconds is the schema descriptor for duration_seconds field.
	testresultDescDurationSeconds := testresultFields[7].Descriptor()
	// testresult.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	testresult.DefaultDurationSeconds = testresultDescDurationSeconds.Default.(float64)
	// testresultDescCreatedAt is the schema descriptor for created_at field.
	testresultDescCreatedAt := testresultFields[9].Descriptor()
	// testresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	testresult.DefaultCreatedAt = testresultDescCreatedAt.Default.(func() time.Time)
	tokenusageFields := schema.TokenUsage{}.Fields()
	_ = tokenusageFields
	// tokenusageDescInputTokens is the schema descriptor for input_tokens field.
	tokenusageDescInputTokens := tokenusageFields[5].Descriptor()
	// tokenusage.DefaultInputTokens holds the default value on creation for the input_tokens field.
	tokenusage.DefaultInputTokens = tokenusageDescInputTokens.Default.(int)
	// tokenusage.InputTokensValidator is a validator for the "input_tokens" field. It is called by the builders before save.
	tokenusage.InputTokensValidator = tokenusageDescInputTokens.Validators[0].(func(int) error)
	// tokenusageDescOutputTokens is the schema descriptor for output_tokens field.
	tokenusageDescOutputTokens := tokenusageFields[6].Descriptor()
	// tokenusage.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	tokenusage.DefaultOutputTokens = tokenusageDescOutputTokens.Default.(int)
	// tokenusage.OutputTokensValidator is a validator for the "output_tokens" field. It is called by the builders before save.
	tokenusage.OutputTokensValidator = tokenusageDescOutputTokens.Validators[0].(func(int) error)
	// tokenusageDescEstimatedCostUsd is the schema descriptor for estimated_cost_usd field.
	tokenusageDescEstimatedCostUsd := tokenusageFields[7].Descriptor()
	// tokenusage.DefaultEstimatedCostUsd holds the default value on creation for the estimated_cost_usd field.
	tokenusage.DefaultEstimatedCostUsd = tokenusageDescEstimatedCostUsd.Default.(float64)
	// tokenusageDescCreatedAt is the schema descriptor for created_at field.
	tokenusageDescCreatedAt := tokenusageFields[9].Descriptor()
	// tokenusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenusage.DefaultCreatedAt = tokenusageDescCreatedAt.Default.(func() time.Time)
}
