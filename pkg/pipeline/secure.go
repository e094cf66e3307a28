package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"image"

	"github.com/mhartmer/certforge/pkg/model"
)

// secureResult carries the raster out of the tamper-evidence stage together
// with the values the sub-stages computed.
type secureResult struct {
	img       image.Image
	signature string // hex digest, empty when signing is disabled
}

// secure applies the enabled tamper-evidence measures in a fixed order:
// digital signature, metadata embedding, QR placement. A disabled sub-stage
// is a guaranteed no-op; with every flag off the raster passes through
// byte-identical.
//
// The signature is computed but not yet embedded into the artifact, and the
// metadata and QR sub-stages are pass-through placeholders. This is a known
// incomplete area, kept as-is deliberately; do not invent an embedding
// format here without also versioning the verification side.
func (g *Generator) secure(img image.Image, certificateID string, p model.PersonRecord, a model.AchievementRecord) secureResult {
	res := secureResult{img: img}

	if g.security.EnableDigitalSignature {
		res.signature = signArtifact(certificateID, p, a, g.security.SecretKey)
	}
	if g.security.EmbedMetadata {
		// placeholder: EXIF-style metadata embedding not implemented
	}
	if g.security.EnableQRCode {
		// placeholder: QR payload encoding not implemented
	}
	return res
}

// signArtifact computes the tamper-seal digest over the certificate ID, the
// person's name and ID, the achievement name, and the secret key. This is a
// hash-derived seal, not public-key signing.
func signArtifact(certificateID string, p model.PersonRecord, a model.AchievementRecord, secret string) string {
	h := sha256.New()
	h.Write([]byte(certificateID))
	h.Write([]byte(p.Name))
	h.Write([]byte(p.ID))
	h.Write([]byte(a.Name))
	h.Write([]byte(secret))
	return hex.EncodeToString(h.Sum(nil))
}

// Checksum computes the content-addressed SHA-256 digest of data as a
// 64-character hex string.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
