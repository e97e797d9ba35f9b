// Package okrsearch is the Go client for the okrsearch cross-entity search API.
//
// Client issues one-shot searches over HTTP:
//
//	client, _ := okrsearch.New(
//	    okrsearch.WithBaseURL("http://localhost:8080"),
//	    okrsearch.WithAPIKey(os.Getenv("OKRSEARCH_API_KEY")),
//	)
//	res, err := client.Search(ctx, "align")
//
// Controller drives search-as-you-type: it debounces input, skips terms
// shorter than two characters, caches answers per term and only surfaces the
// answer for the latest settled term.
//
//	ctrl := okrsearch.NewController(client,
//	    okrsearch.WithOnChange(func(s okrsearch.State) { render(s) }),
//	)
//	defer ctrl.Close()
//	ctrl.SetSearchTerm("al")
package okrsearch
