package main

import (
	"fmt"

	"github.com/fwojciec/qualoffer"
)

// Run executes the offer command.
func (c *OfferCmd) Run(deps *Dependencies) error {
	if _, err := deps.Pipeline.Run(deps.Ctx, c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qualoffer.ErrorMessage(err))
		return err
	}
	return nil
}
