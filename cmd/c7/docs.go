package main

import (
	"github.com/fwojciec/context7"
	"github.com/fwojciec/context7/fs"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	if c.LibraryName == "" && c.LibraryID == "" {
		return context7.Errorf(context7.EINVALID, "Either LIBRARY_NAME or --library-id must be provided")
	}

	session, err := deps.Dialer.Dial(deps.Ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	req := context7.DocsRequest{
		LibraryID:   c.LibraryID,
		LibraryName: c.LibraryName,
		Query:       c.Query,
	}
	result, err := session.GetLibraryDocs(deps.Ctx, req)
	if err != nil {
		return err
	}

	text := context7.Content(result)
	if c.JSON {
		if text, err = context7.FormatJSON(result); err != nil {
			return err
		}
	}

	if c.Output != "" {
		if err := fs.WriteFile(c.Output, text); err != nil {
			return err
		}
		deps.Stdout.Success("Documentation saved to:", c.Output)
		return nil
	}

	if c.JSON {
		return deps.Stdout.JSON(result)
	}
	deps.Stdout.Panel("📚 Documentation: "+req.Library(), text)
	return nil
}
