// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// A SurveyRecord is one zone's row from a survey data release: the
// estimate of a variable together with its reported margin of error.
type SurveyRecord struct {
	ID       string // zone identifier, stable across releases
	Name     string // human-readable zone name
	Estimate float64
	MOE      float64 // survey-reported margin of error
}

const defaultSurveyURL = "https://api.census.gov/data"

// SurveyClient fetches survey estimates from a Census API style
// endpoint. Responses are JSON arrays of string arrays with a header
// row:
//
//	[["NAME","B01001_001E","B01001_001M","state","county"],
//	 ["Autauga County, Alabama","58805","0","01","001"]]
type SurveyClient struct {
	// BaseURL is the root of the API. If empty,
	// "https://api.census.gov/data" is used.
	BaseURL string

	// Key is the API key sent with each request. It is optional for
	// small request volumes.
	Key string

	// HTTPClient is used for requests. If nil, a default client with
	// a 30 second timeout is used.
	HTTPClient *http.Client
}

// NewSurveyClient creates a SurveyClient for the standard endpoint.
// The API key is read from the CENSUS_API_KEY environment variable,
// loading a .env file first if one is present.
func NewSurveyClient() *SurveyClient {
	_ = godotenv.Load(".env")
	return &SurveyClient{Key: os.Getenv("CENSUS_API_KEY")}
}

// Estimates fetches the estimate and margin of error of variable for
// every zone of the given geography level:
//
//	c.Estimates(ctx, 2020, "acs/acs5", "B01001_001E", "county:*", "state:26")
//
// within may be empty for queries that are not nested in a larger
// geography. The variable code must end in E, the survey's estimate
// suffix; the margin-of-error variable code is derived from it by
// replacing that E with M. Zone ids are the concatenation of the
// geography code columns, matching shapefile GEOIDs.
func (c *SurveyClient) Estimates(ctx context.Context, year int, dataset, variable, geography, within string) ([]SurveyRecord, error) {
	moeVar, err := moeVariable(variable)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("get", "NAME,"+variable+","+moeVar)
	q.Set("for", geography)
	if within != "" {
		q.Set("in", within)
	}
	if c.Key != "" {
		q.Set("key", c.Key)
	}
	base := c.BaseURL
	if base == "" {
		base = defaultSurveyURL
	}
	u := fmt.Sprintf("%s/%d/%s?%s", base, year, dataset, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("areal: survey request %d/%s: %s", year, dataset, resp.Status)
	}
	var rows [][]string
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("areal: decoding survey response: %w", err)
	}
	return parseSurveyRows(rows, variable, moeVar)
}

func parseSurveyRows(rows [][]string, estVar, moeVar string) ([]SurveyRecord, error) {
	if len(rows) == 0 {
		return nil, errors.New("areal: empty survey response")
	}
	header := rows[0]
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[h] = i
	}
	for _, name := range []string{"NAME", estVar, moeVar} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("areal: survey response missing column %s", name)
		}
	}
	// The geography code columns trail the requested variables;
	// concatenated in order they form the zone id, e.g.
	// state "26" + county "163" = "26163".
	var geoCols []int
	for i, h := range header {
		if h != "NAME" && h != estVar && h != moeVar {
			geoCols = append(geoCols, i)
		}
	}

	records := make([]SurveyRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("areal: survey row has %d fields, want %d", len(row), len(header))
		}
		est, err := strconv.ParseFloat(row[col[estVar]], 64)
		if err != nil {
			return nil, fmt.Errorf("areal: parsing estimate %q: %w", row[col[estVar]], err)
		}
		moe, err := strconv.ParseFloat(row[col[moeVar]], 64)
		if err != nil {
			return nil, fmt.Errorf("areal: parsing margin of error %q: %w", row[col[moeVar]], err)
		}
		var id strings.Builder
		for _, i := range geoCols {
			id.WriteString(row[i])
		}
		records = append(records, SurveyRecord{
			ID:       id.String(),
			Name:     row[col["NAME"]],
			Estimate: est,
			MOE:      moe,
		})
	}
	return records, nil
}

// moeVariable returns the margin-of-error variable code corresponding
// to an estimate variable code, which by the survey's naming
// convention ends in E.
func moeVariable(estVar string) (string, error) {
	if !strings.HasSuffix(estVar, "E") {
		return "", fmt.Errorf("areal: estimate variable %q does not end in E; cannot derive its margin-of-error variable", estVar)
	}
	return estVar[:len(estVar)-1] + "M", nil
}
