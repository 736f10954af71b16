// Package eligibility holds the outcome types of delivery preparation.
//
// A Result is a tagged union: either an Assignment (vehicle class, weight, order id
// and address) or a rejection Reason. Rejections are ordinary, expected outcomes
// and are returned as data; Reason.Err and Result.Err exist for callers that want
// to surface them as errors.
package eligibility
