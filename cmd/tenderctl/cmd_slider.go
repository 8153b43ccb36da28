package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tendersaarthi/tendersaarthi-api/internal/service"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/client"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/pricerange"
)

var sliderOpts struct {
	minPos   int
	maxPos   int
	minPrice int64
	maxPrice int64
	maxValue int64
	remote   bool
}

var sliderCmd = &cobra.Command{
	Use:   "slider",
	Short: "Convert between price slider positions and rupee amounts",
	Long: `Without --min-price/--max-price the handle positions are converted to rupees.
With them the amounts are converted to handle positions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if sliderOpts.remote {
			res, err := client.New(apiURL).PriceRange(cmd.Context(), sliderOpts.minPos, sliderOpts.maxPos)
			if err != nil {
				return err
			}
			printRange(out, res.MinPos, res.MaxPos, res.MinPrice, res.MaxPrice)
			return nil
		}

		maxValue := sliderOpts.maxValue
		if maxValue <= 0 {
			maxValue = cfg.Listing.DefaultMaxValue
		}
		mapper := pricerange.New(maxValue)

		if cmd.Flags().Changed("min-price") || cmd.Flags().Changed("max-price") {
			upper := sliderOpts.maxPrice
			if !cmd.Flags().Changed("max-price") {
				upper = mapper.MaxValue()
			}
			pos := mapper.Positions(sliderOpts.minPrice, upper)
			lo, hi := mapper.Range(pos)
			printRange(out, pos.Min, pos.Max, lo, hi)
			return nil
		}

		pos := pricerange.Clamp(sliderOpts.minPos, sliderOpts.maxPos)
		lo, hi := mapper.Range(pos)
		printRange(out, pos.Min, pos.Max, lo, hi)
		return nil
	},
}

func init() {
	f := sliderCmd.Flags()
	f.IntVar(&sliderOpts.minPos, "min-pos", pricerange.SliderMin, "Left handle position")
	f.IntVar(&sliderOpts.maxPos, "max-pos", pricerange.SliderMax, "Right handle position")
	f.Int64Var(&sliderOpts.minPrice, "min-price", 0, "Lower bound in rupees")
	f.Int64Var(&sliderOpts.maxPrice, "max-price", 0, "Upper bound in rupees")
	f.Int64Var(&sliderOpts.maxValue, "max-value", 0, "Slider maximum in rupees, defaults to DEFAULT_MAX_TENDER_VALUE")
	f.BoolVar(&sliderOpts.remote, "remote", false, "Ask the API instead of computing locally")
}

func printRange(w io.Writer, minPos, maxPos int, minPrice, maxPrice int64) {
	fmt.Fprintf(w, "positions %d..%d\n", minPos, maxPos)
	fmt.Fprintf(w, "amounts   %s..%s (%d..%d)\n", service.FormatINR(minPrice), service.FormatINR(maxPrice), minPrice, maxPrice)
}
