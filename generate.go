//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/pricemap --repository.default-branch master --repository.path /

// Package pricemap reconciles mobile data plan catalogs into a single
// price list, undercutting the cheapest competitor without selling below
// cost.
package pricemap
