package main

import (
	"strings"

	"github.com/fwojciec/context7"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	if strings.TrimSpace(c.LibraryName) == "" {
		return context7.Errorf(context7.EINVALID, "library name required")
	}

	session, err := deps.Dialer.Dial(deps.Ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	result, err := session.ResolveLibraryID(deps.Ctx, c.LibraryName)
	if err != nil {
		return err
	}

	if c.JSON {
		return deps.Stdout.JSON(result)
	}

	keys := context7.SortedKeys(result)
	if keys == nil {
		deps.Stdout.Println(context7.Stringify(result))
		return nil
	}

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		value, _ := context7.StringField(result, key)
		rows = append(rows, []string{key, value})
	}
	deps.Stdout.Table("Resolved: "+c.LibraryName, []string{"Field", "Value"}, rows)
	return nil
}
