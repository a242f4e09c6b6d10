/* Copyright (c) 2018 Salesforce
 * All rights reserved.
 * Licensed under the BSD 3-Clause license.
 * For full license text, see LICENSE.txt file in the repo root  or https://opensource.org/licenses/BSD-3-Clause
 */

// Package hmiddleware contains the Chi style (function that takes and returns
// a HTTP handler) middleware that runs around an sslify.Enforcer: request IDs,
// request logging, browser hardening headers, ACME challenge handling and a
// strict refuse-plaintext mode.
package hmiddleware
