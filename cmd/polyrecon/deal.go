package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/shaih/go-polyrecon/casefile"
	"github.com/shaih/go-polyrecon/primitives/polynomial"
	"github.com/shaih/go-polyrecon/primitives/shamir"
	log "github.com/sirupsen/logrus"
)

func runDeal(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("deal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	secretStr := fs.String("secret", "", "Secret to share, in decimal")
	k := fs.Int("k", 0, "Threshold")
	n := fs.Int("n", 0, "Number of shares")
	bits := fs.Int("bits", shamir.DefaultCoefficientBits, "Size in bits of the random coefficients")
	basesStr := fs.String("bases", "", "Comma-separated bases of the shares (default: random)")
	seed := fs.String("seed", "", "Seed of the random coefficients (default: random)")
	corrupt := fs.Int("corrupt", 0, "1-based index of a share to corrupt")
	out := fs.String("out", "", "Output file, format by extension (default: JSON on stdout)")
	msgpack := fs.Bool("msgpack", false, "Write msgpack instead of JSON on stdout")
	maxShares := fs.Int("maxshares", shamir.DefaultMaxShares, "Largest accepted number of shares")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	secret, ok := new(big.Int).SetString(*secretStr, 10)
	if !ok {
		fmt.Fprintf(stderr, "deal: invalid secret %q\n", *secretStr)
		return exitUsage
	}
	bases, err := parseBases(*basesStr)
	if err != nil {
		fmt.Fprintf(stderr, "deal: %v\n", err)
		return exitUsage
	}

	params := shamir.DealParams{CoefficientBits: *bits, Bases: bases, MaxShares: *maxShares}
	if *seed != "" {
		key, err := polynomial.KeyFromSeed([]byte(*seed))
		if err != nil {
			fmt.Fprintf(stderr, "deal: %v\n", err)
			return exitFail
		}
		params.Key = &key
	}

	tc, _, err := shamir.GenerateShares(secret, *k, *n, params)
	if err != nil {
		fmt.Fprintf(stderr, "deal: %v\n", err)
		return exitFail
	}
	if *corrupt != 0 {
		tc, err = shamir.Corrupt(tc, *corrupt, big.NewInt(1))
		if err != nil {
			fmt.Fprintf(stderr, "deal: %v\n", err)
			return exitFail
		}
		log.Infof("share %d corrupted", *corrupt)
	}

	if *out != "" {
		err = casefile.Save(*out, tc)
	} else {
		format := casefile.FormatJSON
		if *msgpack {
			format = casefile.FormatMsgpack
		}
		err = casefile.Encode(stdout, tc, format)
	}
	if err != nil {
		fmt.Fprintf(stderr, "deal: %v\n", err)
		return exitFail
	}
	return exitOK
}

func parseBases(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	bases := make([]int, len(fields))
	for i, f := range fields {
		b, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid base %q", f)
		}
		bases[i] = b
	}
	return bases, nil
}
