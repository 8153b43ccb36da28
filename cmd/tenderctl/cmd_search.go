package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/browse"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/client"
)

var searchOpts struct {
	listing     string
	sort        string
	categories  []string
	states      []string
	authorities []string
	tenderTypes []string
	minPrice    int64
	maxPrice    int64
	page        int
	interactive bool
}

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search the public tender listing",
	Long: `Prints one page of a listing. With --interactive every line read from stdin
replaces the search text and the newest results are printed as they settle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := client.ListingRequest{
			Type: searchOpts.listing,
			Sort: searchOpts.sort,
			Page: searchOpts.page,
			Filters: client.Filters{
				Query:       strings.Join(args, " "),
				Categories:  searchOpts.categories,
				States:      searchOpts.states,
				Authorities: searchOpts.authorities,
				TenderTypes: searchOpts.tenderTypes,
			},
		}
		if cmd.Flags().Changed("min-price") {
			req.Filters.MinPrice = &searchOpts.minPrice
		}
		if cmd.Flags().Changed("max-price") {
			req.Filters.MaxPrice = &searchOpts.maxPrice
		}

		api := client.New(apiURL)
		session := browse.New(cmd.Context(), func(ctx context.Context, q client.ListingRequest) (*dto.ListingResult, error) {
			return api.Tenders(ctx, q)
		})
		defer session.Close()

		if searchOpts.interactive {
			return browseInteractive(cmd.Context(), session, req, os.Stdin, cmd.OutOrStdout())
		}

		session.Submit(req)
		select {
		case res := <-session.Results():
			printListing(cmd.OutOrStdout(), res.Value)
			return res.Err
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	},
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchOpts.listing, "type", "", "default, archive, latest or closing-soon")
	f.StringVar(&searchOpts.sort, "sort", "", "newest, oldest, closing or value_high")
	f.StringSliceVar(&searchOpts.categories, "category", nil, "Categories to include")
	f.StringSliceVar(&searchOpts.states, "state", nil, "States to include")
	f.StringSliceVar(&searchOpts.authorities, "authority", nil, "Authority fragments to include")
	f.StringSliceVar(&searchOpts.tenderTypes, "tender-type", nil, "Tender types to include")
	f.Int64Var(&searchOpts.minPrice, "min-price", 0, "Lower bound in rupees")
	f.Int64Var(&searchOpts.maxPrice, "max-price", 0, "Upper bound in rupees")
	f.IntVar(&searchOpts.page, "page", 1, "Page to fetch")
	f.BoolVarP(&searchOpts.interactive, "interactive", "i", false, "Read search text from stdin")
}

func browseInteractive(ctx context.Context, session *browse.Session[client.ListingRequest, *dto.ListingResult], req client.ListingRequest, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	session.Submit(req)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return drain(ctx, session, req, out)
			}
			filters := req.Filters
			filters.Query = strings.TrimSpace(line)
			req = req.WithFilters(filters)
			session.Update(req)
		case res := <-session.Results():
			report(out, res)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// drain issues the final query without waiting for the debounce and prints its result.
func drain(ctx context.Context, session *browse.Session[client.ListingRequest, *dto.ListingResult], req client.ListingRequest, out io.Writer) error {
	target := session.Submit(req)
	for {
		select {
		case res := <-session.Results():
			if res.Generation < target {
				continue
			}
			report(out, res)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func report(out io.Writer, res browse.Result[client.ListingRequest, *dto.ListingResult]) {
	fmt.Fprintf(out, "-- %q\n", res.Query.Filters.Query)
	printListing(out, res.Value)
	if res.Err != nil {
		fmt.Fprintln(out, "error:", res.Err)
	}
}

func printListing(out io.Writer, res *dto.ListingResult) {
	if res == nil {
		return
	}
	if len(res.Items) == 0 {
		msg := "No tenders found"
		if res.Error != "" {
			msg = res.Error
		}
		fmt.Fprintln(out, msg)
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REFERENCE\tTITLE\tSTATE\tVALUE\tCLOSES")
	for _, t := range res.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ReferenceNo, truncate(t.Title, 60), t.State, t.TenderValue, t.BidSubmissionEnd)
	}
	_ = tw.Flush()
	fmt.Fprintf(out, "page %d of %d, %d tenders\n", res.Page, res.TotalPages, res.TotalCount)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
