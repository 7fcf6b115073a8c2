package reportio

import "github.com/memgraph-project/memgraph/graphlet"

func graphletName(i int) string {
	return graphlet.GraphletID(i).String()
}
