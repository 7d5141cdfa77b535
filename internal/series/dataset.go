package series

import (
	"time"

	"DCASimulator/internal/model"
)

// DJI month-end closes, January 2015 through December 2021.
var djiMonthlyCloses = []float64{
	17165, 18133, 17776, 18030, 18010, 17620, 17690, 16528, 16285, 17663, 17720, 17425, // 2015
	16466, 16517, 17685, 17774, 17787, 17930, 18432, 18400, 18308, 18142, 19124, 19763, // 2016
	19864, 20812, 20663, 20940, 21005, 21350, 21891, 21948, 22405, 23377, 24272, 24719, // 2017
	26149, 25029, 24103, 24163, 24416, 24271, 25415, 25965, 26458, 25116, 25538, 23327, // 2018
	24999, 25916, 25929, 26593, 24815, 26600, 26864, 26403, 26917, 27046, 28051, 28538, // 2019
	28256, 25409, 21917, 24346, 25383, 25813, 26428, 28430, 27782, 26502, 29639, 30606, // 2020
	29983, 30932, 32981, 33875, 34529, 34503, 34935, 35361, 33844, 35820, 34484, 36338, // 2021
}

var defaultStart = time.Date(2015, time.January, 31, 0, 0, 0, 0, time.UTC)

// Default returns the embedded DJI series used when a request carries no
// prices of its own.
func Default() model.PriceSeries {
	s, err := New(djiMonthlyCloses, defaultStart)
	if err != nil {
		panic(err) // embedded dataset is known-valid
	}
	return s
}
