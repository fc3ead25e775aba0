// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto protects the WeatherAPI key that release builds ship inside
// the executable.
//
// The pipeline is:
//
//	build time:  plaintext ─ Encrypt ─▶ payload ─ Split ─▶ 3 fragments ─▶ generated source
//	run time:    3 fragments ─ Join ─▶ payload ─ Decrypt ─▶ plaintext
//
// Payload layout (standard base64 of the whole):
//
//	IV (16 bytes) ‖ base64(JSON{"v":1,"alg":"aes-256-cbc","ct":"<hex>"})
//
// Payloads produced before the JSON envelope existed carry the raw
// ciphertext right after the IV. [Decrypt] tells the two layouts apart by
// attempting to parse the envelope.
//
// Threat model: the AES key is derived from constants compiled into every
// binary, so the scheme keeps the key out of `strings` output and casual
// inspection only. Anyone with the source (or a debugger) can recover it.
// It is obfuscation, not secret management.
//
// All functions are stateless and safe for concurrent use.
package crypto
