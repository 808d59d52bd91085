package routestats

import(
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Environment variables that override the defaults. Anything unset keeps its default.
const(
	EnvPrefix = "ROUTESTATS_"
)

// LoadConfig reads the cost model and view options from the environment, after seeding it from
// envFile (if non-empty). Variables already set in the environment take precedence over the file.
func LoadConfig(envFile string) (CostModel, Options, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return CostModel{}, Options{}, fmt.Errorf("LoadConfig: %v", err)
		}
	}
	return ConfigFromEnv(os.LookupEnv)
}

type LookupFunc func(string) (string, bool)

func ConfigFromEnv(lookup LookupFunc) (CostModel, Options, error) {
	m := DefaultCostModel()
	o := DefaultOptions()

	decimals := map[string]*decimal.Decimal{
		"AIRPLANE_PRICE": &m.AirplanePrice,
		"TICKET_PRICE": &m.TicketPrice,
		"FUEL_COST_PER_MILE": &m.FuelCostPerMile,
		"OTHER_COST_PER_MILE": &m.OtherCostPerMile,
		"LARGE_AIRPORT_FEE": &m.LargeAirportFee,
		"MEDIUM_AIRPORT_FEE": &m.MediumAirportFee,
		"DELAY_COST_PER_MINUTE": &m.DelayCostPerMinute,
		"BAGGAGE_FEE": &m.BaggageFee,
		"BAGGAGE_PAYING_SHARE": &m.BaggagePayingShare,
	}
	floats := map[string]*float64{
		"DELAY_GRACE_MINUTES": &m.DelayGraceMinutes,
		"MAX_AVG_DEP_DELAY": &o.MaxAvgDepDelay,
	}
	ints := map[string]*int{
		"PASSENGER_CAPACITY": &m.PassengerCapacity,
		"TOP_N": &o.TopN,
		"RECOMMEND_N": &o.RecommendN,
		"BREAKEVEN_N": &o.BreakevenN,
	}

	for _,k := range sortedKeys(decimals) {
		if s,ok := lookup(EnvPrefix+k); ok && s != "" {
			d,err := decimal.NewFromString(s)
			if err != nil { return m, o, fmt.Errorf("%s%s=%q: %v", EnvPrefix, k, s, err) }
			*decimals[k] = d
		}
	}
	for _,k := range sortedKeys(floats) {
		if s,ok := lookup(EnvPrefix+k); ok && s != "" {
			f,err := strconv.ParseFloat(s, 64)
			if err != nil { return m, o, fmt.Errorf("%s%s=%q: %v", EnvPrefix, k, s, err) }
			*floats[k] = f
		}
	}
	for _,k := range sortedKeys(ints) {
		if s,ok := lookup(EnvPrefix+k); ok && s != "" {
			i,err := strconv.Atoi(s)
			if err != nil { return m, o, fmt.Errorf("%s%s=%q: %v", EnvPrefix, k, s, err) }
			*ints[k] = i
		}
	}

	if err := m.Validate(); err != nil { return m, o, err }
	if err := o.Validate(); err != nil { return m, o, err }
	return m, o, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := []string{}
	for k,_ := range m { keys = append(keys, k) }
	sort.Strings(keys)
	return keys
}
