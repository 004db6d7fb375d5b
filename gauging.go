/*
Copyright © 2026 the UllageMaster authors.
This file is part of UllageMaster.

UllageMaster is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

UllageMaster is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with UllageMaster.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package gauging converts raw tank gauging measurements (ullage,
// temperature, trim) into standardized cargo quantities for marine oil
// cargoes: observed volume, trim- and thermally-corrected volume, volume
// at the 15°C reference standard, and mass in air and in vacuum, following
// the ASTM volume correction conventions used in tanker custody transfer.
//
// The package composes the table lookups in
// github.com/ullagemaster/gauging/interp, the volume correction factor in
// github.com/ullagemaster/gauging/science/astm54b and the unit handling in
// github.com/ullagemaster/gauging/density into a per-tank calculation
// pipeline (Recompute). Every operation is synchronous and works on
// immutable tables plus one mutable TankReading; tanks share no state, so
// callers may recompute different tanks concurrently as long as each
// reading is owned by one goroutine at a time.
package gauging

// Version is the version of this software.
const Version = "1.3.0"
