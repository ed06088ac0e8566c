// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

// sampleConfig is a string containing the commented example config for
// wordcalc.
const sampleConfig = `[Application Options]

; ------------------------------------------------------------------------------
; Representation
; ------------------------------------------------------------------------------

; Representation of operands and results.  Byte strings are 0x prefixed hex or
; decimal literals, hex is 0x prefixed hex text, and dec is decimal text.
; base=bytes

; Sign discipline used to interpret operands: nat, twos, or signmag.
; discipline=twos

; Byte order of byte strings: big or little.  Hex and decimal text is always
; written most significant digit first.
; endian=big

; Fixed width in bytes of byte strings.  Results wrap at the width.  Use 0 for
; resizable byte strings that grow as needed.
; width=0

; Letter case of hex results: lower or upper.
; case=lower


; ------------------------------------------------------------------------------
; Debug
; ------------------------------------------------------------------------------

; Debug logging level.
; Valid levels are {trace, debug, info, warn, error, critical}
; You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set
; log level for individual subsystems.  Use wordcalc --debuglevel=show to list
; available subsystems.
; debuglevel=info
`
