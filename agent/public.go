package agent

import (
	"context"
	"fmt"

	"github.com/quantfold/fincore"
	"github.com/quantfold/fincore/docs"
	"github.com/quantfold/fincore/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to plan investments and understand the risk on his
			multi-currency holdings. Devise a plan of questions to ask each expert and come up
			with the best response to the user's request.

			When an expert returns numbers, present them as-is, do not recompute them yourself.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the expert grounded on web search, for anything
// about markets, rates and institutions.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert financial researcher,
		very well aware of financial products, institutions and market conditions,
		and of the latest news about currencies and interest rates.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert financial researcher. You can search and find about anything related
			to financial institutions, currencies, markets and interest rates. You leverage Google
			Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAnalyst creates the expert in charge of the actual calculations. Its
// library exposes the deterministic engines, so figures come from code, not
// from the model.
func NewAnalyst() *Expert {
	lib := []Function{futureValue, presentValue, requiredContribution, scenarioProjection, riskAnalysis, topicLookup}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He runs the deterministic financial calculators:
		compounding projections, required savings contributions and scenario analyses.
		Ask the Analyst whenever the user needs an actual figure.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial analyst in charge of the user's investment planning.
				You know how to use the Tools to compute exact figures:
				  - future and present values
				  - required monthly contributions towards a goal
				  - scenario projections around an expected return
				  - currency risk analyses over a set of exposures
				Never compute a figure yourself, always use a tool. Rates are fractions (0.08 is 8%).
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// floatArg reads a numeric argument, with a default when absent.
func floatArg(args map[string]any, name string, def float64) (float64, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return def, fmt.Errorf("argument %q is not a number but %T", name, v)
	}
	return f, nil
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var futureValue = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "FutureValue",
		Description: `FutureValue computes what an amount grows to under annual compounding.

		It returns the future value, the total growth and the total return in percent.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount": {Type: genai.TypeNumber, Description: "The present amount to grow."},
				"rate":   {Type: genai.TypeNumber, Description: "The annual rate as a fraction, e.g. 0.08 for 8%."},
				"years":  {Type: genai.TypeNumber, Description: "The investment horizon in years, fractional allowed."},
			},
			Required: []string{"amount", "rate", "years"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown report of the future value calculation.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		amount, err := floatArg(args, "amount", 0)
		if err != nil {
			return errResponse(id, "FutureValue", err)
		}
		rate, err := floatArg(args, "rate", 0)
		if err != nil {
			return errResponse(id, "FutureValue", err)
		}
		years, err := floatArg(args, "years", 0)
		if err != nil {
			return errResponse(id, "FutureValue", err)
		}

		res, err := fincore.FutureValueOf(fincore.M(amount, ""), rate, years)
		if err != nil {
			return errResponse(id, "FutureValue", err)
		}
		return okResponse(id, "FutureValue", renderer.FutureValueMarkdown(res))
	},
}

var presentValue = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "PresentValue",
		Description: `PresentValue computes what a future amount is worth today under annual
		discounting. The exact inverse of FutureValue at the same rate and horizon.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount": {Type: genai.TypeNumber, Description: "The future amount to discount."},
				"rate":   {Type: genai.TypeNumber, Description: "The annual discount rate as a fraction."},
				"years":  {Type: genai.TypeNumber, Description: "The horizon in years, fractional allowed."},
			},
			Required: []string{"amount", "rate", "years"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown report of the present value calculation.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		amount, err := floatArg(args, "amount", 0)
		if err != nil {
			return errResponse(id, "PresentValue", err)
		}
		rate, err := floatArg(args, "rate", 0)
		if err != nil {
			return errResponse(id, "PresentValue", err)
		}
		years, err := floatArg(args, "years", 0)
		if err != nil {
			return errResponse(id, "PresentValue", err)
		}

		res, err := fincore.PresentValueOf(fincore.M(amount, ""), rate, years)
		if err != nil {
			return errResponse(id, "PresentValue", err)
		}
		return okResponse(id, "PresentValue", renderer.PresentValueMarkdown(res))
	},
}

var riskAnalysis = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "RiskAnalysis",
		Description: `RiskAnalysis analyzes the currency risk of a portfolio: combined
		volatility with diversification, 95% value at risk and hedging recommendations.
		Amounts are in the base currency, percentages in [0,100], volatilities and
		correlations as fractions.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"baseCurrency": {Type: genai.TypeString, Description: "The ISO 4217 base currency, e.g. EUR."},
				"value":        {Type: genai.TypeNumber, Description: "The portfolio value in the base currency. The total exposure by default."},
				"exposures": {
					Type:        genai.TypeArray,
					Description: "One entry per foreign currency the portfolio is exposed to.",
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"currency":    {Type: genai.TypeString, Description: "The ISO 4217 currency code."},
							"amount":      {Type: genai.TypeNumber, Description: "The exposed amount in the base currency."},
							"percentage":  {Type: genai.TypeNumber, Description: "The share of the portfolio, in [0,100]."},
							"volatility":  {Type: genai.TypeNumber, Description: "The annualized volatility against the base, as a fraction."},
							"correlation": {Type: genai.TypeNumber, Description: "The correlation to the rest of the book, in [-1,1]."},
						},
						Required: []string{"currency", "percentage", "volatility"},
					},
				},
			},
			Required: []string{"baseCurrency", "exposures"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown report of the risk analysis.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		base, ok := args["baseCurrency"].(string)
		if !ok {
			return errResponse(id, "RiskAnalysis", fmt.Errorf("argument 'baseCurrency' is not a string but %T", args["baseCurrency"]))
		}
		jexposures, ok := args["exposures"].([]any)
		if !ok {
			return errResponse(id, "RiskAnalysis", fmt.Errorf("argument 'exposures' is not an array but %T", args["exposures"]))
		}

		profile, err := fincore.NewCurrencyRiskProfile("portfolio", base)
		if err != nil {
			return errResponse(id, "RiskAnalysis", err)
		}
		for i, je := range jexposures {
			e, ok := je.(map[string]any)
			if !ok {
				return errResponse(id, "RiskAnalysis", fmt.Errorf("exposure %d is not an object but %T", i, je))
			}
			currency, _ := e["currency"].(string)
			amount, _ := e["amount"].(float64)
			percentage, _ := e["percentage"].(float64)
			volatility, _ := e["volatility"].(float64)
			correlation, _ := e["correlation"].(float64)
			err := profile.SetExposure(fincore.CurrencyExposure{
				Currency:    currency,
				Amount:      fincore.M(amount, base),
				Percentage:  percentage,
				Volatility:  volatility,
				Correlation: correlation,
			})
			if err != nil {
				return errResponse(id, "RiskAnalysis", err)
			}
		}

		value := profile.TotalExposure()
		if v, err := floatArg(args, "value", 0); err == nil && v > 0 {
			value = fincore.M(v, base)
		}
		analysis, err := profile.AnalyzePortfolioRisk(value)
		if err != nil {
			return errResponse(id, "RiskAnalysis", err)
		}
		return okResponse(id, "RiskAnalysis", renderer.RiskMarkdown(profile, analysis))
	},
}

var requiredContribution = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "RequiredContribution",
		Description: `RequiredContribution computes the monthly contribution needed to reach a
		financial goal, given the current balance, an annual return and a horizon in years.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"goal":    {Type: genai.TypeNumber, Description: "The target amount."},
				"current": {Type: genai.TypeNumber, Description: "The current balance. Zero is the default."},
				"rate":    {Type: genai.TypeNumber, Description: "The expected annual return as a fraction."},
				"years":   {Type: genai.TypeNumber, Description: "The horizon in years."},
			},
			Required: []string{"goal", "rate", "years"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The required monthly contribution.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		goal, err := floatArg(args, "goal", 0)
		if err != nil {
			return errResponse(id, "RequiredContribution", err)
		}
		current, err := floatArg(args, "current", 0)
		if err != nil {
			return errResponse(id, "RequiredContribution", err)
		}
		rate, err := floatArg(args, "rate", 0)
		if err != nil {
			return errResponse(id, "RequiredContribution", err)
		}
		years, err := floatArg(args, "years", 0)
		if err != nil {
			return errResponse(id, "RequiredContribution", err)
		}

		payment, err := fincore.RequiredMonthlyContribution(fincore.M(goal, ""), fincore.M(current, ""), rate, years)
		if err != nil {
			return errResponse(id, "RequiredContribution", err)
		}
		return okResponse(id, "RequiredContribution", fmt.Sprintf("required monthly contribution: %s", payment))
	},
}

var scenarioProjection = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "ScenarioProjection",
		Description: `ScenarioProjection projects an investment plan under conservative, expected
		and optimistic annual returns, one standard deviation apart.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount":  {Type: genai.TypeNumber, Description: "The initial amount."},
				"payment": {Type: genai.TypeNumber, Description: "The monthly contribution. Zero is the default."},
				"rate":    {Type: genai.TypeNumber, Description: "The expected annual return as a fraction."},
				"sigma":   {Type: genai.TypeNumber, Description: "The standard deviation of the annual return. 0.15 is the default."},
				"years":   {Type: genai.TypeNumber, Description: "The horizon in years."},
				"goal":    {Type: genai.TypeNumber, Description: "An optional target amount each scenario is checked against."},
			},
			Required: []string{"amount", "rate", "years"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table with one row per scenario.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		amount, err := floatArg(args, "amount", 0)
		if err != nil {
			return errResponse(id, "ScenarioProjection", err)
		}
		payment, err := floatArg(args, "payment", 0)
		if err != nil {
			return errResponse(id, "ScenarioProjection", err)
		}
		rate, err := floatArg(args, "rate", 0)
		if err != nil {
			return errResponse(id, "ScenarioProjection", err)
		}
		sigma, err := floatArg(args, "sigma", 0.15)
		if err != nil {
			return errResponse(id, "ScenarioProjection", err)
		}
		years, err := floatArg(args, "years", 0)
		if err != nil {
			return errResponse(id, "ScenarioProjection", err)
		}
		goal, err := floatArg(args, "goal", 0)
		if err != nil {
			return errResponse(id, "ScenarioProjection", err)
		}

		sp, err := fincore.ProjectScenarios(fincore.M(amount, ""), fincore.M(payment, ""), rate, sigma, years, fincore.M(goal, ""))
		if err != nil {
			return errResponse(id, "ScenarioProjection", err)
		}
		return okResponse(id, "ScenarioProjection", renderer.ProjectionMarkdown(sp))
	},
}

var topicLookup = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Documentation",
		Description: `Documentation returns the user documentation for a given topic.

		Available topics:

		` + must(docs.GetTopic("readme")),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topic": {Type: genai.TypeString, Description: "The topic name, or * for all topics."},
			},
			Required: []string{"topic"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The topic's markdown content.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		topic, ok := args["topic"].(string)
		if !ok {
			return errResponse(id, "Documentation", fmt.Errorf("argument 'topic' is not a string but %T", args["topic"]))
		}
		content, err := docs.GetTopic(topic)
		if err != nil {
			return errResponse(id, "Documentation", err)
		}
		return okResponse(id, "Documentation", content)
	},
}
