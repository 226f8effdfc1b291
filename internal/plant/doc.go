// Package plant provides the physical components of a closed-loop solar
// water heater:
//
//   - [Panel]: converts incident solar energy into a temperature rise
//   - [PanelArray]: distributes a water parcel across panels and enforces
//     the maximum safe temperature
//   - [Tank]: stores water and mixes returning parcels conservatively
//   - [CirculationPump]: moves fixed-rate parcels between tank and array
//
// All components assume the idealizations of the model: no heat loss, no
// fouling resistance, stable flow, and negligible piping delay. Water is
// the only working fluid; its properties are the [Water] value.
package plant
