// SPDX-License-Identifier: MIT

// Package xmlstore persists the stateful components (classifier.Bias,
// classifier.MDM, asr.ASR) as XML documents.
//
// Each Save function writes one document with an XML declaration and tab
// indentation; each Load function reads one document into an existing value
// and leaves that value untouched when any part of the document is invalid.
// Matrices are stored as whitespace-separated rows under a size attribute;
// metrics by name (see metric.Metric.MarshalText).
//
// Loading an ASR document installs the median and threshold only: the
// reconstruction matrix resets to the identity, as after asr.ASR.SetMatrices.
//
// Example:
//
//	if err := xmlstore.SaveMDMFile("mdm.xml", c); err != nil { ... }
//	restored := classifier.NewMDM(0, metric.Riemann)
//	if err := xmlstore.LoadMDMFile("mdm.xml", restored); err != nil { ... }
package xmlstore
