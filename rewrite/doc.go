// Package rewrite implements double-pushout rewriting of open
// hypergraphs: given a rule L ⇒ R and a witnessed embedding of L in a
// host, produce the host with that occurrence of L replaced by R.
package rewrite
