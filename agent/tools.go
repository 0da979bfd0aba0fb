package agent

import (
	"context"

	"github.com/whaletrack/whale"
	"github.com/whaletrack/whale/renderer"
	"google.golang.org/genai"
)

// PortfolioTools builds the analyst's function library over the user's
// transaction source. Every tool renders its answer as markdown, the same
// tables the CLI commands print.
func PortfolioTools(name string, source whale.TransactionSource) []Function {
	return []Function{
		positionsTool(source),
		summaryTool(name, source),
		marketTool(),
	}
}

func respond(id, name string, output string, err error) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: id, Name: name}
	if err != nil {
		resp.Response = map[string]any{"error": err.Error()}
		return resp
	}
	resp.Response = map[string]any{"output": output}
	return resp
}

func positionsTool(source whale.TransactionSource) Function {
	const name = "Positions"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Positions lists the user's open positions: for each held asset
			the net quantity, the net invested capital, the average cost and, when the
			market listing covers it, the current value.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the open positions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			txs, err := source.List(ctx)
			if err != nil {
				return respond(id, name, "", err)
			}
			prices, err := priceTable(ctx)
			if err != nil {
				return respond(id, name, "", err)
			}
			return respond(id, name, renderer.PositionsMarkdown(whale.GroupBySymbol(txs), prices), nil)
		},
	}
}

func summaryTool(portfolioName string, source whale.TransactionSource) Function {
	const name = "Summary"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Summary computes the portfolio totals: invested capital,
			current market value and appreciation percentage.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			txs, err := source.List(ctx)
			if err != nil {
				return respond(id, name, "", err)
			}
			prices, err := priceTable(ctx)
			if err != nil {
				return respond(id, name, "", err)
			}
			return respond(id, name, renderer.SummaryMarkdown(portfolioName, whale.Summarize(txs, prices)), nil)
		},
	}
}

func marketTool() Function {
	const name = "Market"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Market lists the top crypto assets by market capitalization
			with their current prices.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted market listing.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			quotes, err := whale.TopAssets(ctx)
			if err != nil {
				return respond(id, name, "", err)
			}
			return respond(id, name, renderer.TopMarkdown(quotes), nil)
		},
	}
}

func priceTable(ctx context.Context) (*whale.PriceTable, error) {
	quotes, err := whale.TopAssets(ctx)
	if err != nil {
		return nil, err
	}
	return whale.NewPriceTable(quotes), nil
}
