package bstmap

import (
	"bufio"
	"fmt"
	"io"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the shape of the tree in Graphviz DOT format
// (for debugging purposes). Absent children are drawn as empty circles,
// so left and right links can be told apart.
func (m *Map[K, V]) ToDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if m != nil {
		ids := newtable[K, V]()
		nilid := 0
		m.preorder(func(n *node[K, V]) bool {
			ID := ids.alloc(n)
			fmt.Fprintf(bw, "\t\"%d\" [label=\"%v\"%s];\n", ID, escape(fmt.Sprint(n.key)), nodeDotStyles)
			for _, child := range [2]*node[K, V]{n.left, n.right} {
				if child == nil {
					nilid--
					fmt.Fprintf(bw, "\t\"%d\" %s;\n", nilid, emptyNode)
					fmt.Fprintf(bw, "\t\"%d\" -> \"%d\";\n", ID, nilid)
				} else {
					fmt.Fprintf(bw, "\t\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				}
			}
			return true
		})
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		T().Errorf("bstmap DOT: %s", err.Error())
		return err
	}
	return nil
}

const emptyNode = "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"

const nodeDotStyles = ",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle"

func escape(label string) string {
	out := make([]byte, 0, len(label))
	for i := 0; i < len(label); i++ {
		if label[i] == '"' || label[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, label[i])
	}
	return string(out)
}
