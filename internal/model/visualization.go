package model

// ChartData is a server-rendered visualization payload (series, labels,
// aggregates). Shapes differ per chart and are owned by the server.
type ChartData map[string]interface{}
