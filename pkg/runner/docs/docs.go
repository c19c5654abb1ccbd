package docs

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/printers"
)

// Docs fetches and prints the uploaded document rows.
type Docs struct {
	ShowID bool

	Service *app.Service
}

func (n *Docs) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not fetch documents, no service")
	}

	docs, err := n.Service.Documents(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("documents", len(docs))
	pp.Documents(docs)
	return nil
}
