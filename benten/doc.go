// Package benten decodes the fuel-cell standard-sample workbook and
// derives the pretreatment transitions shown on the particle-size and
// lattice-strain comparison figures. Each standard sample is measured
// as made, after hydrogen reduction (H), and after electrochemical
// cycling (EC).
package benten
