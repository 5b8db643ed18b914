// Package chart renders the power consumption line charts as fixed-size PNG
// files: a single active-power panel (plot2.png) and a 2x2 grid filled
// column-first (plot4.png).
package chart
