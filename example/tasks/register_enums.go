package tasks

import (
	_ "embed"

	"github.com/iancoleman/orderedmap"
	"go.appointy.com/typedef/loader"
	"go.appointy.com/typedef/schemabuilder"
	"google.golang.org/genproto/googleapis/type/dayofweek"
)

//go:embed labels.yaml
var labelsYAML []byte

// RegisterEnums registers the enums of the task tracker, one per way of
// declaring members, plus the ones loaded from labels.yaml.
func RegisterEnums(sb *schemabuilder.Schema) error {
	sb.Enum(schemabuilder.EnumTypeConfig{
		Name:        "Status",
		Description: "Where a task is in its lifecycle.",
		RootTyping:  "go.appointy.com/typedef/example/tasks.Status",
		Members: schemabuilder.FromList(
			StatusOpen,
			schemabuilder.EnumMemberInfo{Name: "STARTED", Value: StatusStarted, Deprecation: "Use IN_PROGRESS."},
			schemabuilder.EnumMemberInfo{Name: "IN_PROGRESS", Value: StatusInProgress, Description: "Someone is working on it."},
			StatusDone,
		),
	})

	priorities := orderedmap.New()
	priorities.Set("LOW", PriorityLow)
	priorities.Set("MEDIUM", PriorityMedium)
	priorities.Set("HIGH", PriorityHigh)
	sb.Enum(schemabuilder.EnumTypeConfig{
		Name:        "Priority",
		Description: "How urgent a task is.",
		Members:     schemabuilder.FromMap(priorities),
	})

	sb.Enum(schemabuilder.EnumTypeConfig{
		Name:    "Color",
		Members: schemabuilder.FromForeignEnum(Color_name),
	})

	sb.Enum(schemabuilder.EnumTypeConfig{
		Name:        "Weekday",
		Description: "Day a task is due.",
		Members:     schemabuilder.FromProtoEnum(dayofweek.DayOfWeek_MONDAY),
	})

	defs, err := loader.Load("labels.yaml", labelsYAML)
	if err != nil {
		return err
	}
	sb.Register(loader.Definitions(defs)...)
	return nil
}
