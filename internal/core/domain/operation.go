package domain

// BuildOperationCategory classifies a build operation so that listeners can react
// differently depending on its kind.
type BuildOperationCategory uint8

const (
	// OperationConfigureProject is the configuration of a single project.
	OperationConfigureProject BuildOperationCategory = iota
	// OperationTask is the execution of a task.
	OperationTask
	// OperationConfigureRootBuild is the configuration of the root build.
	OperationConfigureRootBuild
	// OperationConfigureBuild is the configuration of a nested build.
	OperationConfigureBuild
	// OperationRunTasksRootBuild runs the tasks of the root build.
	OperationRunTasksRootBuild
	// OperationRunTasks runs the tasks of a nested build.
	OperationRunTasks
	// OperationUncategorized is anything else.
	OperationUncategorized
)

// String returns the string representation of the category.
func (c BuildOperationCategory) String() string {
	switch c {
	case OperationConfigureProject:
		return "CONFIGURE_PROJECT"
	case OperationTask:
		return "TASK"
	case OperationConfigureRootBuild:
		return "CONFIGURE_ROOT_BUILD"
	case OperationConfigureBuild:
		return "CONFIGURE_BUILD"
	case OperationRunTasksRootBuild:
		return "RUN_TASKS_ROOT_BUILD"
	case OperationRunTasks:
		return "RUN_TASKS"
	default:
		return "UNCATEGORIZED"
	}
}
