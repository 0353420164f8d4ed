// Package payload reads and writes the cursor fields of invocation payloads.
//
// Invocations exchange small JSON objects such as {"last_seen_asset_id": "..."}. The
// engine reads its cursor field and the caller gets the same object back with only that
// field replaced, so orchestrator state stored alongside it survives the round trip.
package payload
