// Package models holds the data types shared by the rate server components.
package models

// Currency is one cached exchange rate: how many RUB one unit of Code costs.
type Currency struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
