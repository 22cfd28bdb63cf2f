// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package imageurl rewrites Zoho image references embedded in record fields
// into stable, directly fetchable URLs.
//
// Zoho serves the same photo in two shapes. The API download path encodes
// report, record, field and filename and is converted with the fixed secret
// configured for the field. The ephemeral CDN link carries an x-cli-msg
// parameter (base64 of a JSON document) whose per-link secret must be
// captured when the link is observed. [Parse] classifies a value into a
// [Ref], [Rewriter.Resolve] applies the precedence rules against the value
// already stored locally, and [Rewriter.Rewrite] does both for a batch.
package imageurl
