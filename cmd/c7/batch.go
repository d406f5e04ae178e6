package main

import (
	"fmt"

	"github.com/fwojciec/context7"
)

// Run executes the batch command. Libraries are processed in order over a
// single session; a failing library does not stop the rest.
func (c *BatchCmd) Run(deps *Dependencies) error {
	session, err := deps.Dialer.Dial(deps.Ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	for _, library := range c.Libraries {
		deps.Stdout.Println(fmt.Sprintf("Fetching documentation for %s...", library))
		if err := c.fetch(deps, session, library); err != nil {
			deps.Stdout.Println(fmt.Sprintf("  Error fetching %s: %s", library, context7.ErrorMessage(err)))
		}
	}

	deps.Stdout.Println(fmt.Sprintf("\nAll documentation saved to %s/", c.Dir))
	return nil
}

func (c *BatchCmd) fetch(deps *Dependencies, session context7.Session, library string) error {
	if deps.Limiter != nil {
		if err := deps.Limiter.Wait(deps.Ctx); err != nil {
			return err
		}
	}

	resolved, err := session.ResolveLibraryID(deps.Ctx, library)
	if err != nil {
		return err
	}
	libraryID, ok := context7.ResolvedLibraryID(resolved)
	if !ok {
		return context7.Errorf(context7.EINVALID, "could not resolve library name: %s", library)
	}
	deps.Stdout.Println("  Resolved: " + libraryID)

	docs, err := session.GetLibraryDocs(deps.Ctx, context7.DocsRequest{
		LibraryID: libraryID,
		Query:     c.Query,
	})
	if err != nil {
		return err
	}

	path, err := deps.Writer.WriteDocs(deps.Ctx, library, context7.Content(docs))
	if err != nil {
		return err
	}
	deps.Stdout.Println("  Saved to " + path)
	return nil
}
