// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdk

import (
	"context"

	"github.com/MKhiriev/gameflow-harness/internal/utils"
	"github.com/MKhiriev/gameflow-harness/models"
)

// EphemeralCredentials returns a callback that logs in through the
// ephemeral provider. Every login made through one callback reports the same
// random device identifier.
func EphemeralCredentials() CredentialsCallback {
	device := utils.DeviceIdentifier()
	return func(context.Context) (models.AuthParameters, error) {
		return models.EphemeralDeviceAuth(device), nil
	}
}
