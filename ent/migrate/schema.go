// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeEnum, Enums: []string{"lead", "backend", "frontend", "test", "review"}},
		{Name: "maturity", Type: field.TypeEnum, Enums: []string{"D1", "D2", "D3", "D4"}, Default: "D1"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "working", "blocked", "offline"}, Default: "idle"},
		{Name: "metrics", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "maturity_score", Type: field.TypeFloat64, Nullable: true, Default: 0},
		{Name: "completed_count", Type: field.TypeInt, Default: 0},
		{Name: "last_assessed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_agent_type_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[3]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[7]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[7]},
			},
		},
	}
	// BlockersColumns holds the columns for the "blockers" table.
	BlockersColumns = []*schema.Column{
		{Name: "blocker_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "blocker_type", Type: field.TypeEnum, Enums: []string{"SYNC", "ASYNC"}},
		{Name: "question", Type: field.TypeString, Size: 2000},
		{Name: "answer", Type: field.TypeString, Nullable: true, Size: 5000},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "RESOLVED", "EXPIRED"}, Default: "PENDING"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// BlockersTable holds the schema information for the "blockers" table.
	BlockersTable = &schema.Table{
		Name:       "blockers",
		Columns:    BlockersColumns,
		PrimaryKey: []*schema.Column{BlockersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blocker_agent_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BlockersColumns[1], BlockersColumns[7], BlockersColumns[8]},
			},
			{
				Name:    "blocker_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{BlockersColumns[2], BlockersColumns[7]},
			},
			{
				Name:    "blocker_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BlockersColumns[7], BlockersColumns[8]},
			},
		},
	}
	// ContextCheckpointsColumns holds the columns for the "context_checkpoints" table.
	ContextCheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "items", Type: field.TypeJSON},
		{Name: "items_count", Type: field.TypeInt},
		{Name: "items_archived", Type: field.TypeInt},
		{Name: "hot_items_retained", Type: field.TypeInt},
		{Name: "token_count", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContextCheckpointsTable holds the schema information for the "context_checkpoints" table.
	ContextCheckpointsTable = &schema.Table{
		Name:       "context_checkpoints",
		Columns:    ContextCheckpointsColumns,
		PrimaryKey: []*schema.Column{ContextCheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contextcheckpoint_project_id_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContextCheckpointsColumns[1], ContextCheckpointsColumns[2], ContextCheckpointsColumns[8]},
			},
		},
	}
	// ContextItemsColumns holds the columns for the "context_items" table.
	ContextItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeEnum, Enums: []string{"TASK", "CODE", "ERROR", "TEST_RESULT", "PRD_SECTION"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "importance_score", Type: field.TypeFloat64, Default: 0.5},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"HOT", "WARM", "COLD"}, Default: "WARM"},
		{Name: "access_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_accessed", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// ContextItemsTable holds the schema information for the "context_items" table.
	ContextItemsTable = &schema.Table{
		Name:       "context_items",
		Columns:    ContextItemsColumns,
		PrimaryKey: []*schema.Column{ContextItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "context_items_projects_context_items",
				Columns:    []*schema.Column{ContextItemsColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contextitem_project_id_agent_id_tier",
				Unique:  false,
				Columns: []*schema.Column{ContextItemsColumns[9], ContextItemsColumns[1], ContextItemsColumns[5]},
			},
			{
				Name:    "contextitem_project_id_agent_id_importance_score",
				Unique:  false,
				Columns: []*schema.Column{ContextItemsColumns[9], ContextItemsColumns[1], ContextItemsColumns[4]},
			},
		},
	}
	// CorrectionAttemptsColumns holds the columns for the "correction_attempts" table.
	CorrectionAttemptsColumns = []*schema.Column{
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "error_analysis", Type: field.TypeString, Size: 2147483647},
		{Name: "fix_description", Type: field.TypeString, Size: 2147483647},
		{Name: "code_changes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "test_result_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// CorrectionAttemptsTable holds the schema information for the "correction_attempts" table.
	CorrectionAttemptsTable = &schema.Table{
		Name:       "correction_attempts",
		Columns:    CorrectionAttemptsColumns,
		PrimaryKey: []*schema.Column{CorrectionAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "correction_attempts_tasks_correction_attempts",
				Columns:    []*schema.Column{CorrectionAttemptsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "correctionattempt_task_id_attempt_number",
				Unique:  true,
				Columns: []*schema.Column{CorrectionAttemptsColumns[7], CorrectionAttemptsColumns[1]},
			},
		},
	}
	// EvidenceColumns holds the columns for the "evidence" table.
	EvidenceColumns = []*schema.Column{
		{Name: "evidence_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "task_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "verified", Type: field.TypeBool, Default: false},
		{Name: "test_result", Type: field.TypeJSON, Nullable: true},
		{Name: "skip_violations", Type: field.TypeJSON, Nullable: true},
		{Name: "coverage", Type: field.TypeFloat64, Nullable: true},
		{Name: "quality_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "verification_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "framework", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EvidenceTable holds the schema information for the "evidence" table.
	EvidenceTable = &schema.Table{
		Name:       "evidence",
		Columns:    EvidenceColumns,
		PrimaryKey: []*schema.Column{EvidenceColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evidence_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvidenceColumns[1], EvidenceColumns[12]},
			},
			{
				Name:    "evidence_task_id_verified",
				Unique:  false,
				Columns: []*schema.Column{EvidenceColumns[1], EvidenceColumns[4]},
			},
		},
	}
	// IssuesColumns holds the columns for the "issues" table.
	IssuesColumns = []*schema.Column{
		{Name: "issue_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeInt, Default: 2},
		{Name: "workflow_step", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// IssuesTable holds the schema information for the "issues" table.
	IssuesTable = &schema.Table{
		Name:       "issues",
		Columns:    IssuesColumns,
		PrimaryKey: []*schema.Column{IssuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "issues_projects_issues",
				Columns:    []*schema.Column{IssuesColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "issue_project_id_priority",
				Unique:  false,
				Columns: []*schema.Column{IssuesColumns[6], IssuesColumns[3]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "workspace_path", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"init", "planning", "running", "active", "paused", "completed"}, Default: "init"},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"discovery", "planning", "active", "review", "complete"}, Default: "discovery"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// ProjectAgentsColumns holds the columns for the "project_agents" table.
	ProjectAgentsColumns = []*schema.Column{
		{Name: "assignment_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectAgentsTable holds the schema information for the "project_agents" table.
	ProjectAgentsTable = &schema.Table{
		Name:       "project_agents",
		Columns:    ProjectAgentsColumns,
		PrimaryKey: []*schema.Column{ProjectAgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "projectagent_project_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ProjectAgentsColumns[1], ProjectAgentsColumns[3]},
			},
			{
				Name:    "projectagent_agent_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ProjectAgentsColumns[2], ProjectAgentsColumns[3]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "task_number", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "assigned", "in_progress", "blocked", "completed", "failed"}, Default: "pending"},
		{Name: "assigned_to", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 2},
		{Name: "quality_gate_status", Type: field.TypeEnum, Enums: []string{"pending", "running", "passed", "failed"}, Default: "pending"},
		{Name: "quality_gate_failures", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "requires_human_approval", Type: field.TypeBool, Default: false},
		{Name: "commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "issue_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_issues_tasks",
				Columns:    []*schema.Column{TasksColumns[14]},
				RefColumns: []*schema.Column{IssuesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[15]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[15], TasksColumns[4]},
			},
			{
				Name:    "task_assigned_to_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[4]},
			},
			{
				Name:    "task_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[6], TasksColumns[11]},
			},
		},
	}
	// TestResultsColumns holds the columns for the "test_results" table.
	TestResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"passed", "failed", "error", "timeout", "no_tests"}},
		{Name: "passed", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "errors", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "duration_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TestResultsTable holds the schema information for the "test_results" table.
	TestResultsTable = &schema.Table{
		Name:       "test_results",
		Columns:    TestResultsColumns,
		PrimaryKey: []*schema.Column{TestResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_results_tasks_test_results",
				Columns:    []*schema.Column{TestResultsColumns[9]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testresult_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TestResultsColumns[9], TestResultsColumns[8]},
			},
		},
	}
	// TokenUsageColumns holds the columns for the "token_usage" table.
	TokenUsageColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "estimated_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "call_type", Type: field.TypeEnum, Enums: []string{"task_execution", "code_review", "coordination", "other"}, Default: "task_execution"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TokenUsageTable holds the schema information for the "token_usage" table.
	TokenUsageTable = &schema.Table{
		Name:       "token_usage",
		Columns:    TokenUsageColumns,
		PrimaryKey: []*schema.Column{TokenUsageColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tokenusage_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenUsageColumns[2], TokenUsageColumns[9]},
			},
			{
				Name:    "tokenusage_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenUsageColumns[3], TokenUsageColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AuditLogsTable,
		BlockersTable,
		ContextCheckpointsTable,
		ContextItemsTable,
		CorrectionAttemptsTable,
		EvidenceTable,
		IssuesTable,
		ProjectsTable,
		ProjectAgentsTable,
		TasksTable,
		TestResultsTable,
		TokenUsageTable,
	}
)

func init() {
	ContextItemsTable.ForeignKeys[0].RefTable = ProjectsTable
	CorrectionAttemptsTable.ForeignKeys[0].RefTable = TasksTable
	EvidenceTable.Annotation = &entsql.Annotation{
		Table: "evidence",
	}
	IssuesTable.ForeignKeys[0].RefTable = ProjectsTable
	TasksTable.ForeignKeys[0].RefTable = IssuesTable
	TasksTable.ForeignKeys[1].RefTable = ProjectsTable
	TestResultsTable.ForeignKeys[0].RefTable = TasksTable
	TokenUsageTable.Annotation = &entsql.Annotation{
		Table: "token_usage",
	}
}
