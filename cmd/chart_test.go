package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/lbianchi/pacsim"
)

func TestChartPNG(t *testing.T) {
	p := &pacsim.PortfolioResult{Currency: "EUR"}
	for i := 0; i < 30; i++ {
		p.Chart = append(p.Chart, pacsim.ChartPoint{
			Date:     fmt.Sprintf("2019-01-%02d", i+1),
			Value:    100 + float64(i),
			Invested: 100,
		})
	}

	png, err := chartPNG(p, 800, 400)
	if err != nil {
		t.Fatalf("chartPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("output does not look like a PNG (%d bytes)", len(png))
	}
}

func TestChartPNGTooFewPoints(t *testing.T) {
	p := &pacsim.PortfolioResult{Chart: []pacsim.ChartPoint{{Date: "2019-01-01"}}}
	if _, err := chartPNG(p, 800, 400); err == nil {
		t.Fatal("chartPNG on a single point must fail")
	}
}

func TestParseInstruments(t *testing.T) {
	reqs, err := parseInstruments([]string{"SWDA.MI:2019-01-01:0:100:1", "CSSPX.MI:2020-06-15:1000:250:3"})
	if err != nil {
		t.Fatalf("parseInstruments: %v", err)
	}
	if len(reqs) != 2 || reqs[0].Ticker != "SWDA.MI" || reqs[1].FrequencyMonths != 3 {
		t.Errorf("parseInstruments = %+v", reqs)
	}

	if _, err := parseInstruments(nil); err == nil {
		t.Error("parseInstruments without specs must fail")
	}
	if _, err := parseInstruments([]string{"bogus"}); err == nil {
		t.Error("parseInstruments with a bogus spec must fail")
	}
}
