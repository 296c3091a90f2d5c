package cmd

import (
	"github.com/etnz/cryptfolio"
	"github.com/etnz/cryptfolio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	var codes predict.Set
	for _, c := range cryptfolio.SupportedCurrencies() {
		codes = append(codes, c.Code)
	}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"currency":       codes,
			"interval":       predict.Set{"0.5", "1", "2", "5", "10"},
			"portfolio-file": predict.Files("*.json"),
			"limit":          predict.Nothing,
			"v":              predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"watch":      {},
			"limit":      {},
			"currencies": {},
			"serve": {
				Flags: map[string]complete.Predictor{"addr": predict.Something},
			},
			"topic": {
				Flags: map[string]complete.Predictor{"l": predict.Nothing},
				Args:  predict.Set(topics),
			},
		},
	}
}
