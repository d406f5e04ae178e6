package main

import "github.com/fwojciec/context7"

// Run executes the tools command.
func (c *ToolsCmd) Run(deps *Dependencies) error {
	session, err := deps.Dialer.Dial(deps.Ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	tools, err := session.ListTools(deps.Ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(tools))
	for _, tool := range tools {
		rows = append(rows, toolRow(tool))
	}
	deps.Stdout.Table("Available Context7 MCP Tools", []string{"Tool Name", "Description"}, rows)
	return nil
}

func toolRow(tool any) []string {
	if _, ok := tool.(map[string]any); !ok {
		return []string{context7.Stringify(tool), ""}
	}
	name, ok := context7.StringField(tool, "name")
	if !ok {
		name = "Unknown"
	}
	description, ok := context7.StringField(tool, "description")
	if !ok {
		description = "No description"
	}
	return []string{name, description}
}
