package controllers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fitfuel",
	Name:      "calculations_total",
	Help:      "Count of calculator submissions by outcome.",
}, []string{"outcome"})

func incCalculation(outcome string) {
	calculationsTotal.WithLabelValues(outcome).Inc()
}
